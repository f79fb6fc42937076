package logs

import (
	"context"
	"errors"
	"fmt"
)

// SpanError carries the span an error left
type SpanError struct {
	Err  error
	Span Span
}

func (s SpanError) Error() string {
	return fmt.Sprintf("%v (span: %s)", s.Err, s.Span)
}

func (s SpanError) Unwrap() error {
	return s.Err
}

func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanOf(ctx)
	if span == "" {
		return err
	}
	var spanErr SpanError
	if errors.As(err, &spanErr) {
		// innermost span wins
		return err
	}
	return SpanError{
		Err:  err,
		Span: span,
	}
}
