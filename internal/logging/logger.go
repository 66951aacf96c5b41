// Package logging builds the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fotopanel/internal/config"
)

// New returns a development or production logger depending on cfg.Env.
// When a Rollbar token is configured, error-level entries are also reported.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	log, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	if cfg.RollbarToken != "" {
		rc := NewRollbarCore(cfg.RollbarToken, cfg.Env)
		log = log.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, rc)
		}))
	}

	return log.With(zap.String("service", "fotopanel")), nil
}
