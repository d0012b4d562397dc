package studentaward

import "time"

// StudentAward is a student excellence-award application
type StudentAward struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	ContactNumber string `gorm:"type:varchar(20);not null" json:"contact_number"`
	Email         string `gorm:"type:varchar(255);not null;index" json:"email"`
	Address       string `gorm:"type:text;not null" json:"address"`

	SchoolName      string  `gorm:"type:varchar(255);not null" json:"school_name"`
	Standard        string  `gorm:"type:varchar(50);not null" json:"standard"`
	BoardName       string  `gorm:"type:varchar(255);not null" json:"board_name"`
	ExamYear        string  `gorm:"type:varchar(10);not null" json:"exam_year"`
	TotalPercentage float64 `gorm:"not null" json:"total_percentage"`
	Rank            Rank    `gorm:"type:varchar(10);default:none" json:"rank"`

	Marksheet string `gorm:"type:varchar(2048);not null" json:"marksheet"`

	Status          Status `gorm:"type:varchar(20);not null;index" json:"status"`
	RejectionReason string `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsEligible reports whether the applicant qualifies for an award:
// 85% or above, or a board rank.
func (a *StudentAward) IsEligible() bool {
	return a.TotalPercentage >= 85 || a.Rank.IsRanked()
}
