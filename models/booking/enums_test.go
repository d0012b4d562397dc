package booking

import "testing"

func TestBookingStatusIsValid(t *testing.T) {
	for _, status := range GetAllBookingStatuses() {
		if !status.IsValid() {
			t.Errorf("%s should be valid", status)
		}
	}
	if BookingStatus("Confirmed").IsValid() {
		t.Error("Confirmed is not a booking status")
	}
	if BookingStatus("").IsValid() {
		t.Error("empty status should be invalid")
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingStatusPending, false},
		{BookingStatusApproved, false},
		{BookingStatusBooked, true},
		{BookingStatusRejected, true},
		{BookingStatusCancelled, true},
	}
	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestBookingStatusIsCancellable(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingStatusPending, true},
		{BookingStatusApproved, true},
		{BookingStatusBooked, false},
		{BookingStatusRejected, false},
		{BookingStatusCancelled, false},
	}
	for _, tt := range tests {
		if got := tt.status.IsCancellable(); got != tt.want {
			t.Errorf("%s.IsCancellable() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRulesMatchEnumHelpers(t *testing.T) {
	rules := Rules()

	// Every terminal status must have no outgoing transitions and
	// vice versa.
	for _, status := range GetAllBookingStatuses() {
		outgoing := len(rules[string(status)]) > 0
		if outgoing == status.IsTerminal() {
			t.Errorf("%s: transitions=%v but IsTerminal=%v", status, outgoing, status.IsTerminal())
		}
	}

	// Cancellation is only reachable from cancellable states.
	for from, nexts := range rules {
		cancellable := BookingStatus(from).IsCancellable()
		hasCancel := false
		for _, next := range nexts {
			if next == string(BookingStatusCancelled) {
				hasCancel = true
			}
		}
		if hasCancel != cancellable {
			t.Errorf("%s: cancel transition=%v but IsCancellable=%v", from, hasCancel, cancellable)
		}
	}
}
