package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan derives a context in a new span nested in the span of ctx. Records logged with it carry the span.
type NewSpan func(ctx context.Context, name string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, name string) (context.Context, Span) {
		parent := SpanOf(ctx)
		span := Span(rand.Text()[:16])
		ctx = context.WithValue(ctx, SpanKey, span)
		args := []any{
			"name", name,
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "span", args...)
		return ctx, span
	}
}
