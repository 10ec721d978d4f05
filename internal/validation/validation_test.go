package validation

import (
	"testing"

	"github.com/mealmart/mealmart-go/pkg/errors"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "a@x.com", false},
		{"valid mixed case", "User.Name+tag@Example.COM", false},
		{"empty", "", true},
		{"missing at", "user.example.com", true},
		{"missing domain", "user@", true},
		{"missing tld", "user@example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("Email(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
			if err != nil && !errors.IsValidation(err) {
				t.Errorf("Email(%q) error kind = %v, want validation", tt.email, err)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"valid", "5551234567", false},
		{"empty", "", true},
		{"too short", "555123456", true},
		{"too long", "55512345678", true},
		{"non digits", "555-123-45", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Phone(tt.phone); (err != nil) != tt.wantErr {
				t.Errorf("Phone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  A@X.Com "); got != "a@x.com" {
		t.Errorf("NormalizeEmail() = %v, want a@x.com", got)
	}
}

func TestRequired(t *testing.T) {
	if err := Required("name", "  "); err == nil {
		t.Error("Required() expected error for blank value")
	}
	if err := Required("name", "Ada"); err != nil {
		t.Errorf("Required() error = %v", err)
	}
}

func TestRating(t *testing.T) {
	for _, bad := range []float64{0, 0.5, 5.5, -1} {
		if err := Rating(bad); err == nil {
			t.Errorf("Rating(%v) expected error", bad)
		}
	}
	for _, good := range []float64{1, 3.5, 5} {
		if err := Rating(good); err != nil {
			t.Errorf("Rating(%v) error = %v", good, err)
		}
	}
}
