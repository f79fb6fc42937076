package logs

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestWrapSpan(t *testing.T) {
	if WrapSpan(context.Background(), nil) != nil {
		t.Fatal()
	}
	if err := WrapSpan(context.Background(), io.EOF); err != io.EOF {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
	err := WrapSpan(ctx, io.EOF)
	if !errors.Is(err, io.EOF) {
		t.Fatal()
	}
	var spanErr SpanError
	if !errors.As(err, &spanErr) {
		t.Fatal()
	}
	if spanErr.Span != "foo" {
		t.Fatalf("got %s", spanErr.Span)
	}
	if !strings.Contains(err.Error(), "span: foo") {
		t.Fatalf("got %s", err.Error())
	}

	inner := context.WithValue(ctx, SpanKey, Span("bar"))
	err = WrapSpan(ctx, WrapSpan(inner, io.EOF))
	if !errors.As(err, &spanErr) || spanErr.Span != "bar" {
		t.Fatalf("got %v", err)
	}
}
