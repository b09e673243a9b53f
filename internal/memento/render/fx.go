package render

import (
	"net/http"
	"time"

	"github.com/smallbiznis/memento/internal/clock"
	"github.com/smallbiznis/memento/internal/config"
	"github.com/smallbiznis/memento/internal/memento/assets"
	"github.com/smallbiznis/memento/internal/observability/metrics"
	"github.com/smallbiznis/memento/internal/observability/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("memento.render",
	fx.Provide(func(cfg config.Config, log *zap.Logger) *PhotoLoader {
		client := tracing.WrapHTTPClient(&http.Client{})
		timeout := time.Duration(cfg.PhotoFetchTimeoutSeconds) * time.Second
		return NewPhotoLoader(client, log, timeout)
	}),
	fx.Provide(func() Rasterizers {
		return Rasterizers{Primary: OksvgRasterizer{}, Fallback: OksvgRasterizer{}}
	}),
	fx.Provide(func(log *zap.Logger, loader *assets.Loader, photos *PhotoLoader, rasters Rasterizers, m *metrics.RenderMetrics, clk clock.Clock) *Composer {
		return NewComposer(log, loader, photos, rasters, m, clk)
	}),
)
