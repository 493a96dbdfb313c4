// Package telemetry is the injectable error/event sink. Components that
// need to report take a Sink explicitly; there is no ambient global.
package telemetry

import (
	"time"

	"go.uber.org/zap"
)

// Event is one structured telemetry payload.
type Event struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Sink accepts telemetry events. Report must never block the caller on
// transport I/O and must never fail loudly: telemetry failing is not an
// application error.
type Sink interface {
	Report(event Event)
}

// ZapSink writes events to the structured log.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps a logger as a telemetry sink.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Report(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	s.logger.Warn("telemetry event",
		zap.String("type", event.Type),
		zap.String("message", event.Message),
		zap.Any("context", event.Context),
		zap.Time("timestamp", event.Timestamp))
}

// NopSink discards events. Used when no telemetry endpoint is configured
// and logging alone is enough.
type NopSink struct{}

func (NopSink) Report(Event) {}

// MultiSink fans an event out to several sinks.
type MultiSink []Sink

func (m MultiSink) Report(event Event) {
	for _, sink := range m {
		sink.Report(event)
	}
}

// Error builds an event for a failed operation.
func Error(action string, err error, ctx map[string]any) Event {
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["action"] = action
	return Event{
		Type:      "custom-error",
		Message:   err.Error(),
		Context:   ctx,
		Timestamp: time.Now().UTC(),
	}
}
