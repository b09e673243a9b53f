// Package server exposes the poster engine over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/memento/internal/config"
	"github.com/smallbiznis/memento/internal/memento/domain"
	"github.com/smallbiznis/memento/internal/memento/render"
	"github.com/smallbiznis/memento/internal/observability/logger"
	"github.com/smallbiznis/memento/internal/observability/metrics"
	"github.com/smallbiznis/memento/internal/renderlog"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Composer abstracts the render pipeline so handler tests can substitute it.
type Composer interface {
	Render(ctx context.Context, req domain.RenderRequest) (*render.Result, error)
}

// Server carries the handler dependencies.
type Server struct {
	cfg      config.Config
	log      *zap.Logger
	composer Composer
	recorder *renderlog.Recorder
	node     *snowflake.Node
	httpM    *metrics.HTTPMetrics
	limiter  *rateLimiter
}

type Params struct {
	fx.In

	Config      config.Config
	Log         *zap.Logger
	Composer    *render.Composer
	Recorder    *renderlog.Recorder
	Node        *snowflake.Node
	HTTPMetrics *metrics.HTTPMetrics
}

func New(p Params) *Server {
	return NewServer(p.Config, p.Log, p.Composer, p.Recorder, p.Node, p.HTTPMetrics)
}

func NewServer(cfg config.Config, log *zap.Logger, composer Composer, recorder *renderlog.Recorder, node *snowflake.Node, httpM *metrics.HTTPMetrics) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		log:      log.Named("server"),
		composer: composer,
		recorder: recorder,
		node:     node,
		httpM:    httpM,
		limiter:  newRateLimiter(renderRateLimit, renderRateWindow),
	}
}

// Engine builds the gin engine with middleware and routes.
func (s *Server) Engine() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		Generator: s.node,
		SkipPaths: []string{"/healthz", "/api/health", "/metrics"},
	}))
	e.Use(metrics.GinMiddleware(s.httpM))

	e.NoRoute(func(c *gin.Context) {
		AbortWithError(c, ErrNotFound)
	})

	e.GET("/healthz", s.Healthz)
	e.GET("/api/health", s.Healthz)
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := e.Group("/api/memento")
	api.GET("/templates", s.ListTemplates)
	api.POST("/render", s.RenderPoster)
	api.POST("/preview", s.PreviewPoster)

	return e
}

// RunHTTP binds the engine to the configured address under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server, log *zap.Logger) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.Engine(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(New),
)
