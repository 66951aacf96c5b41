package logging

import (
	"errors"

	"github.com/rollbar/rollbar-go"
	"go.uber.org/zap/zapcore"
)

// rollbarCore forwards error-level entries to Rollbar.
type rollbarCore struct {
	zapcore.LevelEnabler
	client *rollbar.Client
	fields []zapcore.Field
}

func NewRollbarCore(token, env string) zapcore.Core {
	client := rollbar.NewAsync(token, env, "", "", "")
	return &rollbarCore{
		LevelEnabler: zapcore.ErrorLevel,
		client:       client,
	}
}

func (c *rollbarCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &rollbarCore{LevelEnabler: c.LevelEnabler, client: c.client, fields: merged}
}

func (c *rollbarCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *rollbarCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	var cause error
	for _, f := range append(append([]zapcore.Field{}, c.fields...), fields...) {
		if f.Type == zapcore.ErrorType {
			if err, ok := f.Interface.(error); ok {
				cause = err
			}
		}
		f.AddTo(enc)
	}
	if cause == nil {
		cause = errors.New(ent.Message)
	}

	level := rollbar.ERR
	if ent.Level >= zapcore.DPanicLevel {
		level = rollbar.CRIT
	}
	c.client.ErrorWithExtras(level, cause, withMessage(enc.Fields, ent.Message))
	return nil
}

func (c *rollbarCore) Sync() error {
	c.client.Wait()
	return nil
}

func withMessage(extras map[string]interface{}, msg string) map[string]interface{} {
	extras["message"] = msg
	return extras
}
