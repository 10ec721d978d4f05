package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealmart/mealmart-go/internal/config"
)

func newTestIssuer() *PasscodeIssuer {
	return NewPasscodeIssuer(&config.PasscodeConfig{
		Issuer:     "mealmart-test",
		PeriodSecs: 30,
		Skew:       10,
		Digits:     6,
	})
}

func TestPasscodeIssuer_IssueThenVerify(t *testing.T) {
	issuer := newTestIssuer()

	secret, code, err := issuer.Issue("ada@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, secret)
	require.Len(t, code, 6)

	assert.True(t, issuer.Verify(secret, code))
}

func TestPasscodeIssuer_IssueRotatesSecret(t *testing.T) {
	issuer := newTestIssuer()

	secret1, code1, err := issuer.Issue("ada@x.com")
	require.NoError(t, err)
	secret2, _, err := issuer.Issue("ada@x.com")
	require.NoError(t, err)

	require.NotEqual(t, secret1, secret2)
	// A code from the rotated-away secret is invalid against the new one,
	// except for the astronomically unlikely six-digit collision.
	if code2, err := issuer.CodeAt(secret2, time.Now()); err == nil && code1 != code2 {
		assert.False(t, issuer.Verify(secret2, code1))
	}
}

func TestPasscodeIssuer_SkewWindow(t *testing.T) {
	issuer := newTestIssuer()
	secret, _, err := issuer.Issue("ada@x.com")
	require.NoError(t, err)

	step := 30 * time.Second

	// A code minted 9 steps in the past is inside the ±10-step window
	oldCode, err := issuer.CodeAt(secret, time.Now().Add(-9*step))
	require.NoError(t, err)
	assert.True(t, issuer.Verify(secret, oldCode), "code from 9 steps ago should verify")

	// 11 steps in the past falls outside the window.
	// Offset by half a period so step rounding cannot pull it back inside.
	staleCode, err := issuer.CodeAt(secret, time.Now().Add(-11*step-15*time.Second))
	require.NoError(t, err)
	assert.False(t, issuer.Verify(secret, staleCode), "code from beyond the window should fail")
}

func TestPasscodeIssuer_FailsClosed(t *testing.T) {
	issuer := newTestIssuer()

	assert.False(t, issuer.Verify("", "123456"), "missing secret must fail closed")
	assert.False(t, issuer.Verify("JBSWY3DPEHPK3PXP", ""), "missing code must fail closed")
	assert.False(t, issuer.Verify("not-base32-%%%", "123456"), "garbage secret must fail closed")
}

func TestPasscodeIssuer_VerifyDoesNotRotate(t *testing.T) {
	issuer := newTestIssuer()
	secret, code, err := issuer.Issue("ada@x.com")
	require.NoError(t, err)

	// Failed attempts leave the secret usable for a retry
	assert.False(t, issuer.Verify(secret, "000000"))
	assert.True(t, issuer.Verify(secret, code))
}
