package ports

import "context"

// Tracer starts spans around units of work.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start opens a span named name as a child of any span in ctx.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is a single traced operation.
type Span interface {
	// End completes the span.
	End()
	// RecordError marks the span as failed with err.
	RecordError(err error)
	// SetAttribute attaches a key-value pair to the span.
	SetAttribute(key string, value any)
}
