package di

import (
	"go.uber.org/fx"

	"github.com/mealmart/mealmart-go/internal/config"
)

// ConfigModule provides configuration dependencies
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
		provideAppConfig,
		provideDatabaseConfig,
		provideJWTConfig,
		providePasscodeConfig,
		provideMetricsConfig,
		provideLoggingConfig,
	),
)

func provideAppConfig(cfg *config.Config) *config.AppConfig {
	return &cfg.App
}

func provideDatabaseConfig(cfg *config.Config) *config.DatabaseConfig {
	return &cfg.Database
}

func provideJWTConfig(cfg *config.Config) *config.JWTConfig {
	return &cfg.JWT
}

func providePasscodeConfig(cfg *config.Config) *config.PasscodeConfig {
	return &cfg.Passcode
}

func provideMetricsConfig(cfg *config.Config) *config.MetricsConfig {
	return &cfg.Metrics
}

func provideLoggingConfig(cfg *config.Config) *config.LoggingConfig {
	return &cfg.Logging
}
