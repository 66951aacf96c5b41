package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"fotopanel/internal/config"
	"fotopanel/internal/logging"
)

var Module = fx.Options(
	fx.Provide(config.Load, logging.New),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	}),
)
