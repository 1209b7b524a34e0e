// Package logrusadapter provides a logger that writes to a github.com/sirupsen/logrus.Logger
// log.
package logrusadapter

import (
	"context"

	"github.com/pgglance/pgglance"
	"github.com/sirupsen/logrus"
)

type Logger struct {
	l logrus.FieldLogger
}

func NewLogger(l logrus.FieldLogger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(ctx context.Context, level pgglance.LogLevel, msg string, data map[string]interface{}) {
	var logger logrus.FieldLogger
	if data != nil {
		logger = l.l.WithFields(data)
	} else {
		logger = l.l
	}

	switch level {
	case pgglance.LogLevelTrace:
		logger.WithField("PGGLANCE_LOG_LEVEL", level).Debug(msg)
	case pgglance.LogLevelDebug:
		logger.Debug(msg)
	case pgglance.LogLevelInfo:
		logger.Info(msg)
	case pgglance.LogLevelWarn:
		logger.Warn(msg)
	case pgglance.LogLevelError:
		logger.Error(msg)
	default:
		logger.WithField("INVALID_PGGLANCE_LOG_LEVEL", level).Error(msg)
	}
}
