package samuhlagan

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"samaj-backend/models/user"
)

// Party holds the per-person details of one side of the couple. The photo
// and documents are stored as served upload URLs.
type Party struct {
	Name          string         `json:"name"`
	FatherName    string         `json:"father_name"`
	MotherName    string         `json:"mother_name"`
	DateOfBirth   time.Time      `json:"date_of_birth"`
	ContactNumber string         `json:"contact_number"`
	Email         string         `json:"email"`
	Address       string         `json:"address"`
	Photo         string         `json:"photo"`
	Documents     pq.StringArray `json:"documents"`
}

// SamuhLagan is a group-wedding registration submitted by a verified user
// on behalf of a bride and groom.
type SamuhLagan struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	Bride datatypes.JSONType[Party] `json:"bride"`
	Groom datatypes.JSONType[Party] `json:"groom"`

	CeremonyDate time.Time `gorm:"not null" json:"ceremony_date"`

	Status          Status        `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(20);not null;default:pending" json:"payment_status"`
	RejectionReason string        `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Recipients returns the distinct notification addresses for this
// registration: the submitting user plus both parties where present.
func (s *SamuhLagan) Recipients() []string {
	seen := make(map[string]bool)
	var out []string
	for _, addr := range []string{s.User.Email, s.Bride.Data().Email, s.Groom.Data().Email} {
		if addr == "" || seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, addr)
	}
	return out
}
