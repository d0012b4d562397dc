package utils

import (
	"testing"
	"time"

	bookingModel "samaj-backend/models/booking"
)

func TestClassifyDocument(t *testing.T) {
	tests := []struct {
		filename string
		want     bookingModel.DocumentType
	}{
		{"aadhar-card.pdf", bookingModel.DocumentTypeAadhar},
		{"AADHAAR_scan.jpg", bookingModel.DocumentTypeAadhar},
		{"pan_card.png", bookingModel.DocumentTypePAN},
		{"passport-copy.pdf", bookingModel.DocumentTypePassport},
		{"wedding-invitation.pdf", bookingModel.DocumentTypeInvitation},
		{"company-letterhead.docx", bookingModel.DocumentTypeLetterhead},
		{"company-pan.pdf", bookingModel.DocumentTypePAN},
		{"pancake-recipe.pdf", bookingModel.DocumentTypeOther},
		{"birth_certificate.pdf", bookingModel.DocumentTypeBirthCert},
		{"marriage-cert.pdf", bookingModel.DocumentTypeMarriage},
		{"random-file.pdf", bookingModel.DocumentTypeOther},
		{"", bookingModel.DocumentTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := ClassifyDocument(tt.filename); got != tt.want {
				t.Errorf("ClassifyDocument(%q) = %s, want %s", tt.filename, got, tt.want)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if id, ok := claims["id"].(float64); !ok || uint(id) != 42 {
		t.Errorf("id claim = %v, want 42", claims["id"])
	}
	if role, ok := claims["role"].(string); !ok || role != "admin" {
		t.Errorf("role claim = %v, want admin", claims["role"])
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Error("expired token should not parse")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("garbage token should not parse")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2026-03-15", false},
		{"2026-03-15 14:30", false},
		{"2026-03-15T14:30:00Z", false},
		{"not-a-date", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
