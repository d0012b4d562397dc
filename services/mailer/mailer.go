package mailer

import (
	"fmt"
	"time"

	"samaj-backend/logger"
	"samaj-backend/models/outbox"

	"gorm.io/gorm"
)

const defaultMaxAttempts = 5

// Service renders notification templates and queues them in the durable
// outbox. Queuing never fails the caller: a status change must never be
// rolled back because of a delivery problem, so every error here is
// logged and swallowed. Callers must not assume delivery succeeded.
type Service struct {
	db     *gorm.DB
	sender Sender
	wake   chan struct{}
}

func NewService(db *gorm.DB, sender Sender) *Service {
	return &Service{
		db:     db,
		sender: sender,
		wake:   make(chan struct{}, 1),
	}
}

// Send renders the named template for the recipient and persists it as a
// pending outbox row, then nudges the dispatcher. Unknown template names
// and empty recipients are warned about and dropped.
func (s *Service) Send(to, template string, data Data) {
	if to == "" {
		logger.Warning(fmt.Sprintf("Dropping %q notification: empty recipient", template))
		return
	}

	subject, body, ok := Render(template, data)
	if !ok {
		logger.Warning(fmt.Sprintf("Dropping notification: unknown template %q", template))
		return
	}

	row := outbox.Email{
		Recipient:     to,
		Template:      template,
		Subject:       subject,
		Body:          body,
		Status:        outbox.StatusPending,
		MaxAttempts:   defaultMaxAttempts,
		NextAttemptAt: time.Now(),
	}
	if err := s.db.Create(&row).Error; err != nil {
		logger.Error(fmt.Sprintf("Failed to queue %q notification for %s", template, to), err)
		return
	}

	// Non-blocking: a pending wake-up already covers this row.
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
