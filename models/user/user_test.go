package user

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func TestOTPValid(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	code := "123456"
	future := now.Add(5 * time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name  string
		setup func(u *User)
		code  string
		want  bool
	}{
		{"matching unexpired code", func(u *User) { u.SetOTP(code, future) }, code, true},
		{"wrong code", func(u *User) { u.SetOTP(code, future) }, "654321", false},
		{"expired code", func(u *User) { u.SetOTP(code, past) }, code, false},
		{"no code stored", func(u *User) {}, code, false},
		{"empty submission", func(u *User) { u.SetOTP(code, future) }, "", false},
		{"cleared code", func(u *User) { u.SetOTP(code, future); u.ClearOTP() }, code, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			tt.setup(&u)
			if got := u.OTPValid(tt.code, now); got != tt.want {
				t.Errorf("OTPValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetPasswordAndCompare(t *testing.T) {
	var u User
	if err := u.SetPassword("secret123"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if u.Password == "secret123" {
		t.Error("password should be stored hashed")
	}
	if !u.ComparePassword("secret123") {
		t.Error("correct password should match")
	}
	if u.ComparePassword("wrong") {
		t.Error("wrong password should not match")
	}
}

func TestPasswordHistoryBounded(t *testing.T) {
	var u User
	for i := 0; i < PasswordHistoryLimit+3; i++ {
		if err := u.SetPassword("secret123"); err != nil {
			t.Fatalf("SetPassword: %v", err)
		}
	}
	if len(u.PasswordHistory) > PasswordHistoryLimit {
		t.Errorf("history holds %d entries, limit is %d", len(u.PasswordHistory), PasswordHistoryLimit)
	}
	// The latest hash is always the current credential.
	if u.PasswordHistory[len(u.PasswordHistory)-1] != u.Password {
		t.Error("last history entry should be the current hash")
	}
}

func TestUserDeletesSoftly(t *testing.T) {
	s, err := schema.Parse(&User{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("schema.Parse: %v", err)
	}
	field, ok := s.FieldsByName["DeletedAt"]
	if !ok {
		t.Fatal("DeletedAt missing from parsed schema")
	}
	if field.FieldType != reflect.TypeOf(gorm.DeletedAt{}) {
		t.Errorf("DeletedAt type = %v, deletes would be hard", field.FieldType)
	}
}

func TestProfileImageURL(t *testing.T) {
	var u User
	if got := u.ProfileImageURL(); got != "" {
		t.Errorf("empty profile should yield empty URL, got %q", got)
	}
}
