package types

import "strconv"

// StudentAwardRegisterRequest is the award application payload collected
// from multipart form fields. TotalPercentage arrives as a string and is
// range-checked before anything is persisted.
type StudentAwardRegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	ContactNumber   string `json:"contactNumber" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Address         string `json:"address" validate:"required"`
	SchoolName      string `json:"schoolName" validate:"required"`
	Standard        string `json:"standard" validate:"required"`
	BoardName       string `json:"boardName" validate:"required"`
	ExamYear        string `json:"examYear" validate:"required"`
	TotalPercentage string `json:"totalPercentage" validate:"required"`
	Rank            string `json:"rank"`
}

func (r StudentAwardRegisterRequest) Validate() string {
	return validateStruct(r)
}

// Percentage parses and range-checks the submitted percentage
func (r StudentAwardRegisterRequest) Percentage() (float64, string) {
	pct, err := strconv.ParseFloat(r.TotalPercentage, 64)
	if err != nil {
		return 0, "totalPercentage must be a number"
	}
	if pct < 0 || pct > 100 {
		return 0, "totalPercentage must be between 0 and 100"
	}
	return pct, ""
}
