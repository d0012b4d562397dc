package mailer

import "fmt"

// Data is the substitution bag handed to a template. Each template reads
// only the fields it needs.
type Data struct {
	Name       string
	Date       string
	Reason     string
	ReceiptURL string
	OTP        string
	Message    string
	Email      string
}

type rendered struct {
	Subject string
	Body    string
}

type templateFunc func(d Data) rendered

// templates maps a template identifier to its pure rendering function.
// Rendering has no side effects and no I/O.
var templates = map[string]templateFunc{
	"bookingRequest": func(d Data) rendered {
		return rendered{
			Subject: "Booking Request Received",
			Body: fmt.Sprintf(`<h2>Thank you for your booking request!</h2>
<p>Dear %s,</p>
<p>We have received your booking request for %s. Our team will review it and notify you soon.</p>`, d.Name, d.Date),
		}
	},
	"bookingApproved": func(d Data) rendered {
		return rendered{
			Subject: "Wadi Booking Payment Details",
			Body: fmt.Sprintf(`<h2>Booking Payment Details</h2>
<p>Dear %s,</p>
<p>Your booking request for %s has been approved.</p>
<p>You need to pay the booking amount (Samaj Member) / amount (Non-Samaj Member).</p>
<p>Please complete the payment in cash at our office.</p>
<p>Your booking will be confirmed after payment.</p>`, d.Name, d.Date),
		}
	},
	"bookingRejected": func(d Data) rendered {
		return rendered{
			Subject: "Booking Request Rejected",
			Body: fmt.Sprintf(`<h2>Booking Request Status Update</h2>
<p>Dear %s,</p>
<p>Unfortunately, your booking request for %s has been rejected due to: %s</p>
<p>Please try selecting another date.</p>`, d.Name, d.Date, d.Reason),
		}
	},
	"paymentSuccess": func(d Data) rendered {
		return rendered{
			Subject: "Payment Successful - Booking Confirmed",
			Body: fmt.Sprintf(`<h2>Payment Successful!</h2>
<p>Dear %s,</p>
<p>Your payment has been received successfully. Your booking for %s is now confirmed.</p>
<p>You can download your receipt <a href="%s">here</a>.</p>`, d.Name, d.Date, d.ReceiptURL),
		}
	},
	"bookingConfirmed": func(d Data) rendered {
		return rendered{
			Subject: "Booking Confirmed Successfully",
			Body: fmt.Sprintf(`<h2>Booking Confirmation</h2>
<p>Dear %s,</p>
<p>Your booking for %s has been confirmed successfully.</p>
<p>Thank you for choosing our services.</p>`, d.Name, d.Date),
		}
	},
	"bookingCancelled": func(d Data) rendered {
		return rendered{
			Subject: "Booking Cancelled",
			Body: fmt.Sprintf(`<h2>Booking Cancellation</h2>
<p>Dear %s,</p>
<p>Your booking for %s has been cancelled as requested.</p>
<p>We hope to serve you another time.</p>`, d.Name, d.Date),
		}
	},
	"eventReminder": func(d Data) rendered {
		return rendered{
			Subject: fmt.Sprintf("Reminder: Your Upcoming Event on %s", d.Date),
			Body: fmt.Sprintf(`<h2>Event Reminder</h2>
<p>Dear %s,</p>
<p>This is a reminder about your upcoming event on %s.</p>
%s`, d.Name, d.Date, d.Message),
		}
	},
	"samuhLaganThankYou": func(d Data) rendered {
		return rendered{
			Subject: "Samuh Lagan Registration Received",
			Body: fmt.Sprintf(`<h2>Registration Received</h2>
<p>Dear %s,</p>
<p>We have received your Samuh Lagan registration for the ceremony on %s.</p>
<p>Our team will review the documents and notify you soon.</p>`, d.Name, d.Date),
		}
	},
	"samuhLaganApproval": func(d Data) rendered {
		return rendered{
			Subject: "Please Visit Wadi Office for Payment",
			Body: fmt.Sprintf(`<h2>Registration Approved</h2>
<p>Dear %s,</p>
<p>Your Samuh Lagan registration for %s has been approved.</p>
<p>Please visit the wadi office to complete the payment and confirm your participation.</p>`, d.Name, d.Date),
		}
	},
	"samuhLaganConfirmation": func(d Data) rendered {
		return rendered{
			Subject: "Samuh Lagan Booking Confirmed",
			Body: fmt.Sprintf(`<h2>Booking Confirmed</h2>
<p>Dear %s,</p>
<p>Your payment has been received and your Samuh Lagan participation for %s is confirmed.</p>`, d.Name, d.Date),
		}
	},
	"samuhLaganRejection": func(d Data) rendered {
		return rendered{
			Subject: "Samuh Lagan Registration Update",
			Body: fmt.Sprintf(`<h2>Registration Status Update</h2>
<p>Dear %s,</p>
<p>Unfortunately, your Samuh Lagan registration could not be accepted: %s</p>`, d.Name, d.Reason),
		}
	},
	"studentAwardReceived": func(d Data) rendered {
		return rendered{
			Subject: "Student Award Application Received",
			Body: fmt.Sprintf(`<h2>Application Received</h2>
<p>Dear %s,</p>
<p>We have received your student award application. Our team will verify your marksheet and notify you.</p>`, d.Name),
		}
	},
	"studentAwardApproved": func(d Data) rendered {
		return rendered{
			Subject: "Student Award Application Approved",
			Body: fmt.Sprintf(`<h2>Congratulations!</h2>
<p>Dear %s,</p>
<p>Your student award application has been approved. Details of the felicitation ceremony will follow.</p>`, d.Name),
		}
	},
	"studentAwardRejected": func(d Data) rendered {
		return rendered{
			Subject: "Student Award Application Update",
			Body: fmt.Sprintf(`<h2>Application Status Update</h2>
<p>Dear %s,</p>
<p>Unfortunately, your student award application could not be accepted: %s</p>`, d.Name, d.Reason),
		}
	},
	"otpVerification": func(d Data) rendered {
		return rendered{
			Subject: "Email Verification OTP",
			Body:    otpBody("Verify Your Email", "verification", d.OTP),
		}
	},
	"otpReset": func(d Data) rendered {
		return rendered{
			Subject: "Password Reset OTP",
			Body:    otpBody("Reset Your Password", "reset", d.OTP),
		}
	},
	"contactUser": func(d Data) rendered {
		return rendered{
			Subject: "Thank you for contacting us",
			Body: fmt.Sprintf(`<h2>Thank you for reaching out!</h2>
<p>Dear %s,</p>
<p>We have received your message and will get back to you as soon as possible.</p>
<p>Your message:</p>
<blockquote>%s</blockquote>
<p>Best regards,<br>Samaj Web Team</p>`, d.Name, d.Message),
		}
	},
	"contactAdmin": func(d Data) rendered {
		return rendered{
			Subject: "New Contact Form Submission",
			Body: fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p>From: %s (%s)</p>
<p>Message:</p>
<blockquote>%s</blockquote>`, d.Name, d.Email, d.Message),
		}
	},
}

func otpBody(heading, kind, otp string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: 0 auto;">
  <h2 style="text-align: center;">%s</h2>
  <p style="text-align: center;">Your %s OTP is:</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0; text-align: center;">
    <h1 style="letter-spacing: 8px; font-size: 32px; margin: 0;">%s</h1>
  </div>
  <p style="text-align: center;">This OTP will expire in 10 minutes.</p>
</div>`, heading, kind, otp)
}

// Render produces the subject and HTML body for a named template. It
// returns false when the template name is unknown.
func Render(name string, d Data) (subject, body string, ok bool) {
	fn, ok := templates[name]
	if !ok {
		return "", "", false
	}
	out := fn(d)
	return out.Subject, out.Body, true
}
