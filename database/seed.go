package database

import (
	"errors"

	"samaj-backend/constants"
	"samaj-backend/logger"
	"samaj-backend/models/form"

	"gorm.io/gorm"
)

// SeedForms guarantees one gate row per gated workflow. Existing rows are
// left untouched so admin settings survive restarts.
func SeedForms(db *gorm.DB) error {
	for _, formType := range []string{constants.FormTypeSamuhLagan, constants.FormTypeStudentAwards} {
		var existing form.Form
		err := db.Where("form_type = ?", formType).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&form.Form{FormType: formType, Active: false}).Error; err != nil {
			return err
		}
		logger.Info("Seeded form gate: " + formType)
	}
	return nil
}
