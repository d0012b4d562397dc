package mailer

import (
	"strings"
	"testing"
)

func TestRenderKnownTemplates(t *testing.T) {
	data := Data{
		Name:    "Asha Patel",
		Date:    "15 Mar 2026",
		Reason:  "Date unavailable",
		OTP:     "123456",
		Message: "Hello",
		Email:   "asha@example.com",
	}

	for name := range templates {
		subject, body, ok := Render(name, data)
		if !ok {
			t.Errorf("%s: Render returned ok=false", name)
			continue
		}
		if subject == "" {
			t.Errorf("%s: empty subject", name)
		}
		if body == "" {
			t.Errorf("%s: empty body", name)
		}
	}
}

func TestRenderSubstitutions(t *testing.T) {
	tests := []struct {
		template string
		data     Data
		contains []string
	}{
		{"bookingRequest", Data{Name: "Asha", Date: "15 Mar 2026"}, []string{"Asha", "15 Mar 2026"}},
		{"bookingRejected", Data{Name: "Asha", Date: "15 Mar 2026", Reason: "Date unavailable"}, []string{"Date unavailable"}},
		{"otpVerification", Data{Name: "Asha", OTP: "482913"}, []string{"482913"}},
		{"otpReset", Data{Name: "Asha", OTP: "482913"}, []string{"482913"}},
		{"contactAdmin", Data{Name: "Asha", Email: "asha@example.com", Message: "Hello"}, []string{"asha@example.com", "Hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			_, body, ok := Render(tt.template, tt.data)
			if !ok {
				t.Fatalf("Render(%q) returned ok=false", tt.template)
			}
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, _, ok := Render("noSuchTemplate", Data{}); ok {
		t.Error("unknown template should return ok=false")
	}
}
