package logger

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/memento/internal/observability/context"
	"go.uber.org/zap"
)

// MiddlewareConfig configures the request logging middleware.
type MiddlewareConfig struct {
	// Generator mints request ids when the client did not send one.
	// Optional; a process-local node is created when nil.
	Generator *snowflake.Node

	// SkipPaths lists routes that should not emit summary lines.
	SkipPaths []string
}

// GinMiddleware assigns X-Request-Id and logs one summary line per request.
func GinMiddleware(cfg MiddlewareConfig) gin.HandlerFunc {
	gen := cfg.Generator
	if gen == nil {
		node, err := snowflake.NewNode(1)
		if err == nil {
			gen = node
		}
	}
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader("X-Request-Id"))
		if requestID == "" && gen != nil {
			requestID = gen.Generate().String()
		}
		if requestID != "" {
			c.Set("request_id", requestID)
			c.Writer.Header().Set("X-Request-Id", requestID)
			ctx := obscontext.WithRequestID(c.Request.Context(), requestID)
			c.Request = c.Request.WithContext(ctx)
		}

		start := time.Now()
		c.Next()

		if _, skipped := skip[c.FullPath()]; skipped {
			return
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.Any("headers", MaskHeaders(c.Request.Header)),
		}
		FromContext(c.Request.Context()).Info("http request", fields...)
	}
}
