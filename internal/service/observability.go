package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// AnalysisEvent captures lightweight execution telemetry for one analysis run.
type AnalysisEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// AnalysisObserver receives analysis execution events.
type AnalysisObserver interface {
	ObserveAnalysis(ctx context.Context, event AnalysisEvent)
}

// NoopAnalysisObserver ignores all events.
type NoopAnalysisObserver struct{}

func (NoopAnalysisObserver) ObserveAnalysis(context.Context, AnalysisEvent) {}

type logAnalysisObserver struct {
	logger *slog.Logger
}

// NewLogAnalysisObserver writes analysis events to the provided writer.
func NewLogAnalysisObserver(w io.Writer) AnalysisObserver {
	if w == nil {
		return NoopAnalysisObserver{}
	}
	return &logAnalysisObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logAnalysisObserver) ObserveAnalysis(ctx context.Context, event AnalysisEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"operation", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "analysis", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "analysis", attrs...)
}

func observerOrNoop(observers []AnalysisObserver) AnalysisObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopAnalysisObserver{}
}
