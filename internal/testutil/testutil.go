// Package testutil provides shared fixtures for service tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/mealmart/mealmart-go/internal/config"
	"github.com/mealmart/mealmart-go/internal/security"
)

// testIDCounter is used to generate unique test identifiers
var testIDCounter uint64

// UniqueEmail returns a process-unique email address for test accounts
func UniqueEmail(prefix string) string {
	n := atomic.AddUint64(&testIDCounter, 1)
	return fmt.Sprintf("%s-%d@example.com", prefix, n)
}

// Logger returns a test-scoped zap logger
func Logger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// JWTProvider returns a provider with a fixed test secret
func JWTProvider() *security.JWTProvider {
	return security.NewJWTProvider(&config.JWTConfig{
		Secret:               "test-secret-key-for-tests-only",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
		Issuer:               "mealmart-test",
	})
}

// PasscodeIssuer returns an issuer with the default verification window
func PasscodeIssuer() *security.PasscodeIssuer {
	return security.NewPasscodeIssuer(&config.PasscodeConfig{
		Issuer:     "mealmart-test",
		PeriodSecs: 30,
		Skew:       10,
		Digits:     6,
	})
}
