package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/sonos/internal/core/ports"
)

// SpanLogger implements sdktrace.SpanProcessor by logging every finished span.
type SpanLogger struct {
	logger ports.Logger
}

// NewSpanLogger returns a new SpanLogger.
func NewSpanLogger(logger ports.Logger) *SpanLogger {
	return &SpanLogger{logger: logger}
}

// OnStart does nothing; spans are reported once they end.
func (l *SpanLogger) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration and its attributes.
// Failed spans are logged as warnings.
func (l *SpanLogger) OnEnd(s sdktrace.ReadOnlySpan) {
	if l.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	msg := fmt.Sprintf("%s took %s", s.Name(), elapsed)
	if attrs := formatAttributes(s.Attributes()); attrs != "" {
		msg += " " + attrs
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		l.logger.Warn(fmt.Sprintf("%s: %s", msg, desc))
		return
	}
	l.logger.Info(msg)
}

// ForceFlush does nothing.
func (l *SpanLogger) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (l *SpanLogger) Shutdown(_ context.Context) error {
	return nil
}

func formatAttributes(attrs []attribute.KeyValue) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(attrs))
	for _, kv := range attrs {
		parts = append(parts, string(kv.Key)+"="+kv.Value.Emit())
	}
	slices.Sort(parts)
	return "(" + strings.Join(parts, " ") + ")"
}

// Install registers a global TracerProvider that reports spans through logger.
// The returned function shuts the provider down.
func Install(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewSpanLogger(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
