package types

// PartyRequest is one side of the couple in a Samuh Lagan submission,
// collected from multipart form fields.
type PartyRequest struct {
	Name          string `json:"name" validate:"required"`
	FatherName    string `json:"fatherName"`
	MotherName    string `json:"motherName"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address" validate:"required"`
}

func (r PartyRequest) Validate() string {
	return validateStruct(r)
}

// SamuhLaganSubmitRequest is the assembled group-wedding registration.
// The parties are excluded from tag validation and checked through their
// own Validate so failures carry a bride/groom prefix.
type SamuhLaganSubmitRequest struct {
	Bride        PartyRequest `json:"bride" validate:"-"`
	Groom        PartyRequest `json:"groom" validate:"-"`
	CeremonyDate string       `json:"ceremonyDate" validate:"required"`
}

func (r SamuhLaganSubmitRequest) Validate() string {
	if msg := validateStruct(r); msg != "" {
		return msg
	}
	if msg := r.Bride.Validate(); msg != "" {
		return "bride " + msg
	}
	if msg := r.Groom.Validate(); msg != "" {
		return "groom " + msg
	}
	return ""
}
