package form

import (
	"testing"
	"time"
)

func TestIsCurrentlyActive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name  string
		form  Form
		want  bool
	}{
		{"inactive switch wins", Form{Active: false, StartTime: &before, EndTime: &after}, false},
		{"active with no bounds", Form{Active: true}, true},
		{"inside window", Form{Active: true, StartTime: &before, EndTime: &after}, true},
		{"before window opens", Form{Active: true, StartTime: &after}, false},
		{"after window closes", Form{Active: true, EndTime: &before}, false},
		{"only start, already open", Form{Active: true, StartTime: &before}, true},
		{"only end, still open", Form{Active: true, EndTime: &after}, true},
		{"at exact start", Form{Active: true, StartTime: &now}, true},
		{"at exact end", Form{Active: true, EndTime: &now}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.form.IsCurrentlyActive(now); got != tt.want {
				t.Errorf("IsCurrentlyActive() = %v, want %v", got, tt.want)
			}
		})
	}
}
