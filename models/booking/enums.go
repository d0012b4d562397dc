package booking

// BookingStatus is the lifecycle state of a venue booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusApproved  BookingStatus = "Approved"
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusRejected  BookingStatus = "Rejected"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Payment states tracked alongside the booking status
const (
	PaymentStatusCompleted = "Completed"
)

// DocumentType classifies the uploaded supporting document
type DocumentType string

const (
	DocumentTypeAadhar      DocumentType = "Aadhar Card"
	DocumentTypePAN         DocumentType = "PAN Card"
	DocumentTypePassport    DocumentType = "Passport"
	DocumentTypeInvitation  DocumentType = "Event Invitation"
	DocumentTypeLetterhead  DocumentType = "Organization Letterhead"
	DocumentTypeBirthCert   DocumentType = "Birth Certificate"
	DocumentTypeMarriage    DocumentType = "Marriage Certificate"
	DocumentTypeOther       DocumentType = "Other"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusApproved, BookingStatusBooked,
		BookingStatusRejected, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true when no further transitions are allowed
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusBooked || bs == BookingStatusRejected || bs == BookingStatusCancelled
}

// IsCancellable returns true when the requester may still cancel
func (bs BookingStatus) IsCancellable() bool {
	return bs == BookingStatusPending || bs == BookingStatusApproved
}

// Rules is the booking transition table consumed by the workflow engine
func Rules() map[string][]string {
	return map[string][]string{
		string(BookingStatusPending): {
			string(BookingStatusApproved),
			string(BookingStatusRejected),
			string(BookingStatusCancelled),
		},
		string(BookingStatusApproved): {
			string(BookingStatusBooked),
			string(BookingStatusRejected),
			string(BookingStatusCancelled),
		},
	}
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusApproved,
		BookingStatusBooked,
		BookingStatusRejected,
		BookingStatusCancelled,
	}
}
