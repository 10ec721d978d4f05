// Package validation holds field-level validators shared by the account
// lifecycle services. All failures carry the VALIDATION_ERROR kind tag.
package validation

import (
	"regexp"
	"strings"

	"github.com/mealmart/mealmart-go/pkg/errors"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// NormalizeEmail trims and lowercases an email address. Uniqueness checks and
// lookups always operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeIdentifier trims and lowercases a case-insensitive identifier
// such as a registration number.
func NormalizeIdentifier(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Email validates email syntax on the normalized form
func Email(email string) error {
	if email == "" {
		return errors.ErrValidation.WithMessage("email is required")
	}
	if !emailPattern.MatchString(NormalizeEmail(email)) {
		return errors.ErrValidation.WithMessage("email is not valid")
	}
	return nil
}

// Phone validates that a phone number is exactly ten digits
func Phone(phone string) error {
	if phone == "" {
		return errors.ErrValidation.WithMessage("phone number is required")
	}
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return errors.ErrValidation.WithMessage("phone number must contain exactly ten digits")
	}
	return nil
}

// Required validates that a named field is non-blank
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.ErrValidation.WithMessagef("%s is required", field)
	}
	return nil
}

// Rating validates a review rating
func Rating(rating float64) error {
	if rating < 1 || rating > 5 {
		return errors.ErrValidation.WithMessage("rating must be between 1 and 5")
	}
	return nil
}
