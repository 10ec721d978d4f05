package di

import (
	"go.uber.org/fx"

	"github.com/mealmart/mealmart-go/internal/observability"
)

// MetricsModule provides the Prometheus metric set
var MetricsModule = fx.Module("metrics",
	fx.Provide(observability.NewMetrics),
)
