package xlog

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger for the debug-level progress messages IMM
// emits during its sampling phase. The zero value is a disabled logger
// (Debugf is a no-op), so callers who never opt in pay nothing.
type Logger struct {
	z       zerolog.Logger
	enabled bool
}

// New builds a Logger writing to w at the given zerolog level.
func New(w io.Writer, level zerolog.Level) Logger {
	return Logger{z: zerolog.New(w).Level(level).With().Timestamp().Logger(), enabled: true}
}

// Debugf logs a debug-level message with printf-style formatting.
func (l Logger) Debugf(format string, args ...interface{}) {
	if !l.enabled {
		return
	}
	l.z.Debug().Msgf(format, args...)
}
