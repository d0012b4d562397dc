package workflow

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func testRules() Rules {
	return Rules{
		"pending":  {"approved", "rejected"},
		"approved": {"confirmed", "rejected"},
	}
}

func TestRulesCan(t *testing.T) {
	rules := testRules()

	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to approved", "pending", "approved", true},
		{"pending to rejected", "pending", "rejected", true},
		{"pending cannot skip to confirmed", "pending", "confirmed", false},
		{"approved to confirmed", "approved", "confirmed", true},
		{"confirmed is terminal", "confirmed", "approved", false},
		{"rejected is terminal", "rejected", "pending", false},
		{"unknown status allows nothing", "nonsense", "approved", false},
		{"no self loop unless listed", "pending", "pending", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.Can(tt.from, tt.to); got != tt.want {
				t.Errorf("Can(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRulesTerminal(t *testing.T) {
	rules := testRules()

	if rules.Terminal("pending") {
		t.Error("pending should not be terminal")
	}
	if !rules.Terminal("confirmed") {
		t.Error("confirmed should be terminal")
	}
	if !rules.Terminal("unknown") {
		t.Error("unknown statuses should read as terminal")
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, fiber.StatusNotFound},
		{"conflict", ErrConflict, fiber.StatusBadRequest},
		{"wrapped conflict", errors.Join(errors.New("ctx"), ErrConflict), fiber.StatusBadRequest},
		{"anything else", errors.New("db down"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
