// Package di wires the application with fx.
package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/config"
)

// AppModule aggregates all application modules
var AppModule = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DatabaseModule,
	DAOModule,
	RepositoryModule,
	SecurityModule,
	ServiceModule,
)

// PrintBanner logs the application identity on startup
func PrintBanner(cfg *config.Config, logger *zap.Logger) {
	logger.Info("starting mealmart",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment))
}
