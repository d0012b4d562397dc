package workflow

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the entity id does not exist
	ErrNotFound = errors.New("record not found")
	// ErrConflict means the requested transition is not allowed from the
	// entity's current status, or a concurrent update won the race
	ErrConflict = errors.New("illegal status transition")
)

// Rules is a transition table: current status -> allowed next statuses.
// Statuses absent from the map are terminal.
type Rules map[string][]string

// Can reports whether the table allows moving from one status to another
func (r Rules) Can(from, to string) bool {
	for _, next := range r[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves the given status
func (r Rules) Terminal(from string) bool {
	return len(r[from]) == 0
}

// Apply moves one entity row from one status to another, writing any
// extra column updates in the same statement. The update is conditional
// on the row still holding the expected current status, so two
// concurrent transitions on the same id cannot both win.
func Apply(db *gorm.DB, model interface{}, id uint, rules Rules, from, to string, extra map[string]interface{}) error {
	if !rules.Can(from, to) {
		return ErrConflict
	}

	updates := map[string]interface{}{"status": to}
	for col, val := range extra {
		updates[col] = val
	}

	res := db.Model(model).Where("id = ? AND status = ?", id, from).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// The row changed under us between load and update.
		return ErrConflict
	}
	return nil
}

// Load fetches an entity by id, translating the driver's missing-row
// error into ErrNotFound.
func Load(db *gorm.DB, dest interface{}, id uint) error {
	if err := db.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// StatusCode maps workflow errors onto HTTP status codes
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
