package types

import (
	"strings"
	"testing"
)

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		req      RegisterRequest
		wantPart string
	}{
		{"valid", RegisterRequest{Username: "asha", Email: "asha@example.com", Password: "secret123"}, ""},
		{"missing email", RegisterRequest{Username: "asha", Password: "secret123"}, "email"},
		{"bad email", RegisterRequest{Username: "asha", Email: "nope", Password: "secret123"}, "email"},
		{"short password", RegisterRequest{Username: "asha", Email: "asha@example.com", Password: "abc"}, "password"},
		{"short username", RegisterRequest{Username: "ab", Email: "asha@example.com", Password: "secret123"}, "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Validate()
			if tt.wantPart == "" {
				if got != "" {
					t.Errorf("Validate() = %q, want no error", got)
				}
				return
			}
			if !strings.Contains(strings.ToLower(got), tt.wantPart) {
				t.Errorf("Validate() = %q, want mention of %q", got, tt.wantPart)
			}
		})
	}
}

func TestVerifyOTPRequestValidate(t *testing.T) {
	ok := VerifyOTPRequest{Email: "asha@example.com", OTP: "123456"}
	if got := ok.Validate(); got != "" {
		t.Errorf("Validate() = %q, want no error", got)
	}

	short := VerifyOTPRequest{Email: "asha@example.com", OTP: "123"}
	if got := short.Validate(); got == "" {
		t.Error("short OTP should fail validation")
	}
}

func TestStudentAwardPercentage(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"92.5", 92.5, false},
		{"0", 0, false},
		{"100", 100, false},
		{"101", 0, true},
		{"-1", 0, true},
		{"ninety", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			req := StudentAwardRegisterRequest{TotalPercentage: tt.in}
			got, msg := req.Percentage()
			if (msg != "") != tt.wantErr {
				t.Fatalf("Percentage(%q) msg = %q, wantErr %v", tt.in, msg, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Percentage(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSamuhLaganSubmitValidatePrefixesParty(t *testing.T) {
	valid := PartyRequest{Name: "A", DateOfBirth: "2000-01-01", ContactNumber: "123", Address: "x"}

	tests := []struct {
		name       string
		req        SamuhLaganSubmitRequest
		wantPrefix string
	}{
		{
			"empty groom",
			SamuhLaganSubmitRequest{Bride: valid, Groom: PartyRequest{}, CeremonyDate: "2026-05-01"},
			"groom ",
		},
		{
			"empty bride reported first",
			SamuhLaganSubmitRequest{Bride: PartyRequest{}, Groom: PartyRequest{}, CeremonyDate: "2026-05-01"},
			"bride ",
		},
		{
			"missing ceremony date reported before parties",
			SamuhLaganSubmitRequest{Bride: PartyRequest{}, Groom: PartyRequest{}},
			"ceremonydate ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Validate()
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("Validate() = %q, want %q prefix", got, tt.wantPrefix)
			}
		})
	}

	ok := SamuhLaganSubmitRequest{Bride: valid, Groom: valid, CeremonyDate: "2026-05-01"}
	if got := ok.Validate(); got != "" {
		t.Errorf("Validate() = %q, want no error", got)
	}
}
