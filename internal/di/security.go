package di

import (
	"go.uber.org/fx"

	"github.com/mealmart/mealmart-go/internal/security"
)

// SecurityModule provides the credential and passcode primitives
var SecurityModule = fx.Module("security",
	fx.Provide(
		security.NewPasswordHasher,
		security.NewPasscodeIssuer,
		security.NewJWTProvider,
	),
)
