// Package zerologadapter provides a logger that writes to a github.com/rs/zerolog.
package zerologadapter

import (
	"context"

	"github.com/pgglance/pgglance"
	"github.com/rs/zerolog"
)

type Logger struct {
	logger zerolog.Logger
}

// NewLogger accepts a zerolog.Logger as input and returns a new custom
// pgglance logging facade as output.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger.With().Str("module", "pgglance").Logger(),
	}
}

func (pl *Logger) Log(ctx context.Context, level pgglance.LogLevel, msg string, data map[string]interface{}) {
	var zlevel zerolog.Level
	switch level {
	case pgglance.LogLevelNone:
		zlevel = zerolog.NoLevel
	case pgglance.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case pgglance.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case pgglance.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	case pgglance.LogLevelDebug:
		zlevel = zerolog.DebugLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	log := pl.logger.With().Fields(data).Logger()
	log.WithLevel(zlevel).Msg(msg)
}
