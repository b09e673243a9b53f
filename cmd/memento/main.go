package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/memento/internal/clock"
	"github.com/smallbiznis/memento/internal/config"
	"github.com/smallbiznis/memento/internal/memento/assets"
	"github.com/smallbiznis/memento/internal/memento/render"
	"github.com/smallbiznis/memento/internal/observability/logger"
	"github.com/smallbiznis/memento/internal/observability/metrics"
	"github.com/smallbiznis/memento/internal/observability/tracing"
	"github.com/smallbiznis/memento/internal/renderlog"
	"github.com/smallbiznis/memento/internal/server"
	"github.com/smallbiznis/memento/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		tracing.Module,
		metrics.Module,
		clock.Module,
		fx.Provide(func() (*snowflake.Node, error) {
			return snowflake.NewNode(1)
		}),
		db.Module,
		fx.Invoke(func(conn *gorm.DB) error {
			return renderlog.AutoMigrate(conn)
		}),
		assets.Module,
		render.Module,
		renderlog.Module,
		server.Module,
		fx.Invoke(server.RunHTTP),
	)
	app.Run()
}
