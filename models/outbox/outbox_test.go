package outbox

import (
	"errors"
	"testing"
	"time"
)

func TestDue(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		email Email
		want  bool
	}{
		{"pending and ripe", Email{Status: StatusPending, NextAttemptAt: now.Add(-time.Minute)}, true},
		{"pending at exact instant", Email{Status: StatusPending, NextAttemptAt: now}, true},
		{"pending but backing off", Email{Status: StatusPending, NextAttemptAt: now.Add(time.Minute)}, false},
		{"already sent", Email{Status: StatusSent, NextAttemptAt: now.Add(-time.Minute)}, false},
		{"abandoned", Email{Status: StatusFailed, NextAttemptAt: now.Add(-time.Minute)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.email.Due(now); got != tt.want {
				t.Errorf("Due() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarkAttemptSuccess(t *testing.T) {
	now := time.Now()
	e := Email{Status: StatusPending, MaxAttempts: 5, LastError: "previous failure"}

	e.MarkAttempt(nil, now)

	if e.Status != StatusSent {
		t.Errorf("status = %s, want %s", e.Status, StatusSent)
	}
	if e.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", e.Attempts)
	}
	if e.SentAt == nil || !e.SentAt.Equal(now) {
		t.Error("SentAt should record the delivery instant")
	}
	if e.LastError != "" {
		t.Error("LastError should be cleared on success")
	}
}

func TestMarkAttemptBackoff(t *testing.T) {
	now := time.Now()
	e := Email{Status: StatusPending, MaxAttempts: 5}

	e.MarkAttempt(errors.New("smtp refused"), now)
	first := e.NextAttemptAt
	if e.Status != StatusPending {
		t.Fatalf("status = %s, want still pending", e.Status)
	}
	if !first.After(now) {
		t.Error("failed attempt should push NextAttemptAt into the future")
	}

	e.MarkAttempt(errors.New("smtp refused"), now)
	if !e.NextAttemptAt.After(first) {
		t.Error("backoff should grow between attempts")
	}
	if e.LastError != "smtp refused" {
		t.Errorf("LastError = %q", e.LastError)
	}
}

func TestMarkAttemptExhaustion(t *testing.T) {
	now := time.Now()
	e := Email{Status: StatusPending, MaxAttempts: 3}

	for i := 0; i < 3; i++ {
		e.MarkAttempt(errors.New("smtp refused"), now)
	}

	if e.Status != StatusFailed {
		t.Errorf("status = %s, want %s after exhausting attempts", e.Status, StatusFailed)
	}
	if e.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", e.Attempts)
	}
}
