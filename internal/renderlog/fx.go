package renderlog

import (
	"go.uber.org/fx"
)

var Module = fx.Module("renderlog",
	fx.Provide(NewRecorder),
)
