package types

// BookingSubmitRequest is the public venue-booking submission payload.
// The event document must already be uploaded; its served URL is passed
// here together with the classified document type.
type BookingSubmitRequest struct {
	Name               string   `json:"name" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	Phone              string   `json:"phone" validate:"required"`
	EventType          string   `json:"eventType" validate:"required"`
	Date               string   `json:"date" validate:"required"`
	StartTime          string   `json:"startTime" validate:"required"`
	EndTime            string   `json:"endTime" validate:"required"`
	GuestCount         int      `json:"guestCount" validate:"required,gt=0"`
	AdditionalServices []string `json:"additionalServices"`
	AdditionalNotes    string   `json:"additionalNotes"`
	EventDocument      string   `json:"eventDocument" validate:"required"`
	DocumentType       string   `json:"documentType"`
}

func (r BookingSubmitRequest) Validate() string {
	return validateStruct(r)
}

type RejectRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

// BookingUpdateRequest is the admin booking edit payload. Nil pointers
// leave the stored value untouched. A non-empty Status is validated
// against the booking transition table before it is written.
type BookingUpdateRequest struct {
	Name               *string  `json:"name"`
	Email              *string  `json:"email" validate:"omitempty,email"`
	Phone              *string  `json:"phone"`
	EventType          *string  `json:"eventType"`
	Date               *string  `json:"date"`
	StartTime          *string  `json:"startTime"`
	EndTime            *string  `json:"endTime"`
	GuestCount         *int     `json:"guestCount" validate:"omitempty,gt=0"`
	AdditionalServices []string `json:"additionalServices"`
	AdditionalNotes    *string  `json:"additionalNotes"`
	Status             string   `json:"status"`
}

func (r BookingUpdateRequest) Validate() string {
	return validateStruct(r)
}
