package logs

import "context"

type Span string

type spanKey struct{}

// SpanKey is the context key of the current Span
var SpanKey spanKey

// SpanOf returns the span ctx is in, empty if none
func SpanOf(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}
