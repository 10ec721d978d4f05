package security

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/mealmart/mealmart-go/internal/config"
)

// PasscodeIssuer issues and verifies time-based one-time codes for the
// email/phone/registration verification flows. Each Issue call produces a
// fresh secret; the caller stores it transiently on the entity, which is what
// invalidates any previously outstanding code.
type PasscodeIssuer struct {
	issuer string
	period uint
	skew   uint
	digits otp.Digits
	now    func() time.Time
}

// NewPasscodeIssuer creates a PasscodeIssuer from config
func NewPasscodeIssuer(cfg *config.PasscodeConfig) *PasscodeIssuer {
	digits := otp.DigitsSix
	if cfg.Digits == 8 {
		digits = otp.DigitsEight
	}
	return &PasscodeIssuer{
		issuer: cfg.Issuer,
		period: cfg.PeriodSecs,
		skew:   cfg.Skew,
		digits: digits,
		now:    time.Now,
	}
}

func (p *PasscodeIssuer) validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    p.period,
		Skew:      p.skew,
		Digits:    p.digits,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// Issue generates a fresh shared secret and derives the code for the current
// time step. accountName identifies the entity (its email) in the OTP key.
func (p *PasscodeIssuer) Issue(accountName string) (secret, code string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      p.issuer,
		AccountName: accountName,
		Period:      p.period,
		SecretSize:  20,
		Digits:      p.digits,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", err
	}

	code, err = totp.GenerateCodeCustom(key.Secret(), p.now(), p.validateOpts())
	if err != nil {
		return "", "", err
	}
	return key.Secret(), code, nil
}

// CodeAt derives the code for the given secret at an arbitrary time.
// Delivery channels that re-send the current code use this.
func (p *PasscodeIssuer) CodeAt(secret string, at time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, at, p.validateOpts())
}

// Verify checks a submitted code against the stored secret across the
// tolerance window. A missing secret fails closed. Verification never
// rotates the secret, so retries within the window remain possible.
func (p *PasscodeIssuer) Verify(secret, code string) bool {
	if secret == "" || code == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, p.now(), p.validateOpts())
	return err == nil && ok
}
