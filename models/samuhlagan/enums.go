package samuhlagan

// Status is the lifecycle state of a group-wedding registration
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// PaymentStatus tracks the subsidized-ceremony fee
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusConfirmed, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal returns true when no further transitions are allowed
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusRejected
}

// Rules is the samuh-lagan transition table consumed by the workflow engine
func Rules() map[string][]string {
	return map[string][]string{
		string(StatusPending): {
			string(StatusApproved),
			string(StatusRejected),
		},
		string(StatusApproved): {
			string(StatusConfirmed),
			string(StatusRejected),
		},
	}
}
