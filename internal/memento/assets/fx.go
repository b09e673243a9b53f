package assets

import (
	"github.com/smallbiznis/memento/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("memento.assets",
	fx.Provide(func(cfg config.Config, log *zap.Logger) *Loader {
		return NewLoader(cfg.AssetDir, log)
	}),
)
