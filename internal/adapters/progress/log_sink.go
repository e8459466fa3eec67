package progress

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

// LogSink reports progress as plain log lines. Used in non-interactive runs
// where spinner output would garble captured logs.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a log-backed progress sink.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.log.Info(event.Message, "phase", event.Phase, "stage", event.Stage)
}

func (s *LogSink) Info(message string) {
	s.log.Info(message)
}

func (s *LogSink) Error(message string) {
	s.log.Error(message)
}

var _ usecase.ProgressSink = (*LogSink)(nil)
