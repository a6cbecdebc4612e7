package commands

import (
	"io"
	"time"

	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/rs/zerolog"
)

// zerologAdapter adapts zerolog.Logger to cs.Logger.
type zerologAdapter struct {
	logger zerolog.Logger
}

// NewLogger builds a console logger on w scoped to the client component.
// Debug events are only emitted when verbose is set.
func NewLogger(w io.Writer, verbose bool) cs.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("component", "client").
		Logger()

	return &zerologAdapter{logger: logger}
}

func (l *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
