package mailer

import (
	"fmt"
	"time"

	"samaj-backend/logger"
	"samaj-backend/models/outbox"
)

// how often the dispatcher sweeps for retryable rows regardless of wake-ups
const sweepInterval = 30 * time.Second

// Dispatch drains the outbox: woken by Send and by a periodic sweep, it
// attempts every due pending row and records the outcome with backoff.
// Run it in its own goroutine.
func (s *Service) Dispatch() {
	logger.Info("Starting notification outbox dispatcher...")

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.wake:
		case <-ticker.C:
		}
		s.processDue()
	}
}

func (s *Service) processDue() {
	now := time.Now()

	var due []outbox.Email
	err := s.db.Where("status = ? AND next_attempt_at <= ?", outbox.StatusPending, now).
		Order("created_at ASC").
		Limit(50).
		Find(&due).Error
	if err != nil {
		logger.Error("Failed to load due outbox rows", err)
		return
	}

	for i := range due {
		row := &due[i]
		sendErr := s.sender.Send(row.Recipient, row.Subject, row.Body)
		row.MarkAttempt(sendErr, time.Now())

		if saveErr := s.db.Save(row).Error; saveErr != nil {
			logger.Error(fmt.Sprintf("Failed to record outbox attempt for row %d", row.ID), saveErr)
			continue
		}

		switch {
		case sendErr == nil:
			logger.Success(fmt.Sprintf("Delivered %q notification to %s", row.Template, row.Recipient))
		case row.Status == outbox.StatusFailed:
			logger.Error(fmt.Sprintf("Abandoning %q notification to %s after %d attempts", row.Template, row.Recipient, row.Attempts), sendErr)
		default:
			logger.Warning(fmt.Sprintf("Delivery of %q to %s failed (attempt %d), retrying at %s", row.Template, row.Recipient, row.Attempts, row.NextAttemptAt.Format(time.RFC3339)))
		}
	}
}
