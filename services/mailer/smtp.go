package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

// Sender delivers a rendered email to one recipient
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender delivers mail over plain-auth SMTP configured from the
// environment (SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS).
type SMTPSender struct{}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")

	if host == "" || port == "" || user == "" || pass == "" {
		return fmt.Errorf("smtp not configured")
	}

	addr := host + ":" + port
	from := user

	msg := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"utf-8\"\r\n\r\n" +
		body + "\r\n"

	auth := smtp.PlainAuth("", user, pass, host)
	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg))
}
