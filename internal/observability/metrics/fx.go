package metrics

import (
	"github.com/smallbiznis/memento/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
)

var Module = fx.Module("observability.metrics",
	fx.Provide(func(cfg config.Config) Config {
		return Config{
			ServiceName: "memento",
			Environment: cfg.Environment,
		}
	}),
	fx.Provide(func() metric.MeterProvider {
		return otel.GetMeterProvider()
	}),
	fx.Provide(NewHTTPMetrics),
	fx.Provide(RenderWithConfig),
)
