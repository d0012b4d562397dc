package form

import "time"

// Form is a per-workflow submission gate: a master switch plus an
// optional [StartTime, EndTime] acceptance window.
type Form struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	FormType string `gorm:"type:varchar(50);not null;unique" json:"form_type"`
	Active   bool   `gorm:"default:false" json:"active"`

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	EventDate *time.Time `json:"event_date"`

	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsCurrentlyActive reports whether the gate accepts submissions at
// instant now. The master switch wins; with no bounds set an active form
// is always open; otherwise now must lie within whichever bounds exist.
func (f *Form) IsCurrentlyActive(now time.Time) bool {
	if !f.Active {
		return false
	}
	if f.StartTime == nil && f.EndTime == nil {
		return true
	}
	afterStart := f.StartTime == nil || !now.Before(*f.StartTime)
	beforeEnd := f.EndTime == nil || !now.After(*f.EndTime)
	return afterStart && beforeEnd
}
