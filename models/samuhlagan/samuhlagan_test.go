package samuhlagan

import (
	"testing"

	"samaj-backend/models/user"

	"gorm.io/datatypes"
)

func TestRecipients(t *testing.T) {
	reg := SamuhLagan{
		User:  user.User{Email: "submitter@example.com"},
		Bride: datatypes.NewJSONType(Party{Email: "bride@example.com"}),
		Groom: datatypes.NewJSONType(Party{Email: "groom@example.com"}),
	}

	got := reg.Recipients()
	if len(got) != 3 {
		t.Fatalf("Recipients() = %v, want 3 addresses", got)
	}
}

func TestRecipientsDeduplicates(t *testing.T) {
	reg := SamuhLagan{
		User:  user.User{Email: "same@example.com"},
		Bride: datatypes.NewJSONType(Party{Email: "same@example.com"}),
		Groom: datatypes.NewJSONType(Party{Email: ""}),
	}

	got := reg.Recipients()
	if len(got) != 1 {
		t.Fatalf("Recipients() = %v, want single deduplicated address", got)
	}
	if got[0] != "same@example.com" {
		t.Errorf("Recipients()[0] = %q", got[0])
	}
}

func TestStatusRules(t *testing.T) {
	rules := Rules()

	allowed := func(from, to Status) bool {
		for _, next := range rules[string(from)] {
			if next == string(to) {
				return true
			}
		}
		return false
	}

	if !allowed(StatusPending, StatusApproved) {
		t.Error("pending should allow approved")
	}
	if !allowed(StatusApproved, StatusConfirmed) {
		t.Error("approved should allow confirmed")
	}
	if allowed(StatusPending, StatusConfirmed) {
		t.Error("pending must not skip straight to confirmed")
	}
	if len(rules[string(StatusConfirmed)]) != 0 || len(rules[string(StatusRejected)]) != 0 {
		t.Error("confirmed and rejected should be terminal")
	}

	for _, s := range []Status{StatusConfirmed, StatusRejected} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}
