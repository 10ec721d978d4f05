package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/config"
	"github.com/mealmart/mealmart-go/pkg/logger"
)

// LoggerModule provides logging dependencies
var LoggerModule = fx.Module("logger",
	fx.Provide(provideLogger),
)

func provideLogger(app *config.AppConfig, cfg *config.LoggingConfig) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.Level,
		Development: app.Debug,
		Encoding:    cfg.Encoding,
		Service:     app.Name,
	})
}
