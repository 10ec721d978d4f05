package security

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/mealmart/mealmart-go/pkg/errors"
)

const (
	// DefaultCost matches the cost the stored credentials were written with.
	// Changing it invalidates no existing hash but slows new registrations.
	DefaultCost = 8

	// MinPasswordLength is the minimum accepted plaintext length
	MinPasswordLength = 8
)

var (
	hasLetter = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
)

// ValidatePassword enforces the plaintext policy: at least eight characters
// with at least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.ErrValidation.WithMessage("password must be at least 8 characters")
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return errors.ErrValidation.WithMessage("password must contain at least one letter and one number")
	}
	return nil
}

// PasswordHasher handles password hashing and verification
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a new PasswordHasher instance
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: DefaultCost}
}

// Hash validates the plaintext policy and generates a salted bcrypt hash.
// Callers invoke it only when the password is newly set or changed; persisting
// an entity without touching the password must never pass through here again.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify checks if the password matches the hash. It returns false on any
// mismatch and never errors for wrong passwords.
func (h *PasswordHasher) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
