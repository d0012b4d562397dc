package otp

import (
	"crypto/rand"
	"fmt"
	"time"

	"samaj-backend/models/user"
	"samaj-backend/services/mailer"

	"gorm.io/gorm"
)

// Purpose selects which email template delivers the code
type Purpose string

const (
	PurposeRegistration Purpose = "registration"
	PurposeReset        Purpose = "reset"
)

const (
	codeLength = 6
	// codes expire 10 minutes after issue
	ttl = 10 * time.Minute
)

// Service issues and delivers one-time codes stored on the user row
type Service struct {
	DB     *gorm.DB
	Mailer *mailer.Service
}

func NewService(db *gorm.DB, m *mailer.Service) *Service {
	return &Service{DB: db, Mailer: m}
}

// Generate returns a cryptographically random numeric code
func Generate() (string, error) {
	bytes := make([]byte, codeLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	code := make([]byte, codeLength)
	for i := range bytes {
		code[i] = '0' + (bytes[i] % 10)
	}
	return string(code), nil
}

// Issue stores a fresh code on the account and queues the matching email.
// Any previously pending code is replaced.
func (s *Service) Issue(u *user.User, purpose Purpose) error {
	code, err := Generate()
	if err != nil {
		return err
	}

	u.SetOTP(code, time.Now().Add(ttl))
	if err := s.DB.Save(u).Error; err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	template := "otpVerification"
	if purpose == PurposeReset {
		template = "otpReset"
	}
	s.Mailer.Send(u.Email, template, mailer.Data{Name: u.Username, OTP: code})

	return nil
}

// Verify checks the submitted code against the account's pending OTP.
// On success the code is cleared. Mismatch and expiry are reported
// uniformly so callers leak nothing about which check failed.
func (s *Service) Verify(u *user.User, code string) bool {
	if !u.OTPValid(code, time.Now()) {
		return false
	}
	u.ClearOTP()
	return true
}
