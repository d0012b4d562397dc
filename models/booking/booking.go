package booking

import (
	"time"

	"github.com/lib/pq"
)

// Booking is a venue ("wadi") booking request. Status moves only through
// the transitions in Rules(); the rejection reason is overwritten on each
// rejection, no transition history is kept.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone string `gorm:"type:varchar(20);not null" json:"phone"`

	EventType  string    `gorm:"type:varchar(100);not null" json:"event_type"`
	Date       time.Time `gorm:"not null" json:"date"`
	StartTime  string    `gorm:"type:varchar(10);not null" json:"start_time"`
	EndTime    string    `gorm:"type:varchar(10);not null" json:"end_time"`
	GuestCount int       `gorm:"not null" json:"guest_count"`

	AdditionalServices pq.StringArray `gorm:"type:text[]" json:"additional_services"`
	AdditionalNotes    string         `gorm:"type:text" json:"additional_notes"`

	EventDocument string       `gorm:"type:varchar(2048);not null" json:"event_document"`
	DocumentType  DocumentType `gorm:"type:varchar(50);default:Other" json:"document_type"`

	Status          BookingStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentStatus   string        `gorm:"type:varchar(20)" json:"payment_status,omitempty"`
	RejectionReason string        `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
