package outbox

import "time"

// DeliveryStatus is the dispatch state of a queued email
type DeliveryStatus string

const (
	StatusPending DeliveryStatus = "pending"
	StatusSent    DeliveryStatus = "sent"
	StatusFailed  DeliveryStatus = "failed"
)

// Email is a rendered notification persisted before dispatch. Rows stay
// pending until the dispatcher delivers them or exhausts MaxAttempts.
type Email struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Recipient string `gorm:"type:varchar(255);not null" json:"recipient"`
	Template  string `gorm:"type:varchar(100);not null" json:"template"`
	Subject   string `gorm:"type:varchar(255);not null" json:"subject"`
	Body      string `gorm:"type:text;not null" json:"body"`

	Status        DeliveryStatus `gorm:"type:varchar(10);not null;default:pending;index" json:"status"`
	Attempts      int            `gorm:"default:0" json:"attempts"`
	MaxAttempts   int            `gorm:"default:5" json:"max_attempts"`
	NextAttemptAt time.Time      `gorm:"index" json:"next_attempt_at"`
	LastError     string         `gorm:"type:text" json:"last_error,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

// Due reports whether the row should be attempted at instant now
func (e *Email) Due(now time.Time) bool {
	return e.Status == StatusPending && !now.Before(e.NextAttemptAt)
}

// MarkAttempt records a delivery attempt outcome. Failed attempts back
// off exponentially; the row is abandoned after MaxAttempts.
func (e *Email) MarkAttempt(err error, now time.Time) {
	e.Attempts++
	if err == nil {
		e.Status = StatusSent
		e.SentAt = &now
		e.LastError = ""
		return
	}
	e.LastError = err.Error()
	if e.Attempts >= e.MaxAttempts {
		e.Status = StatusFailed
		return
	}
	backoff := time.Duration(1<<uint(e.Attempts)) * time.Minute
	e.NextAttemptAt = now.Add(backoff)
}
