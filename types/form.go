package types

import "time"

// FormUpdateRequest is the admin gate-configuration payload. Time fields
// are strings to accept the several date formats the dashboard sends.
type FormUpdateRequest struct {
	Active    *bool  `json:"active"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	EventDate string `json:"eventDate"`
}

// FormTimerRequest activates a gate with a submission window
type FormTimerRequest struct {
	FormName  string `json:"formName" validate:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (r FormTimerRequest) Validate() string {
	return validateStruct(r)
}

// FormStatus is the gate state reported to clients
type FormStatus struct {
	Active            bool       `json:"active"`
	StartTime         *time.Time `json:"start_time"`
	EndTime           *time.Time `json:"end_time"`
	EventDate         *time.Time `json:"event_date"`
	LastUpdated       *time.Time `json:"last_updated"`
	IsCurrentlyActive bool       `json:"is_currently_active"`
}
