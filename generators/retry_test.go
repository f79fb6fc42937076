package generators

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"
)

func TestDoWithRetry(t *testing.T) {
	defer func(d time.Duration) {
		retryBackoff = d
	}(retryBackoff)
	retryBackoff = time.Millisecond
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	n := 0
	ret, err := doWithRetry(t.Context(), logger, func() (string, error) {
		n++
		if n < 3 {
			return "", errors.Join(fmt.Errorf("busy"), ErrRetryable)
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if ret != "ok" || n != 3 {
		t.Fatalf("got %s %d", ret, n)
	}

	// not retryable
	n = 0
	_, err = doWithRetry(t.Context(), logger, func() (string, error) {
		n++
		return "", io.EOF
	})
	if !errors.Is(err, io.EOF) || n != 1 {
		t.Fatalf("got %v %d", err, n)
	}

	// gives up
	n = 0
	_, err = doWithRetry(t.Context(), logger, func() (string, error) {
		n++
		return "", fmt.Errorf("gemini: %w", genai.APIError{Code: 429})
	})
	if err == nil || n != maxRetries {
		t.Fatalf("got %v %d", err, n)
	}
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v", err)
	}

	// cancelled
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err = doWithRetry(ctx, logger, func() (string, error) {
		return "", ErrRetryable
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func TestDoWithRetryNoWaitAfterLastAttempt(t *testing.T) {
	defer func(d time.Duration) {
		retryBackoff = d
	}(retryBackoff)
	retryBackoff = time.Millisecond
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, nil))

	n := 0
	_, err := doWithRetry(t.Context(), logger, func() (string, error) {
		n++
		if n == maxRetries {
			// the last attempt must not be followed by a backoff
			retryBackoff = time.Hour
		}
		return "", ErrRetryable
	})
	if !errors.Is(err, ErrRetryable) || n != maxRetries {
		t.Fatalf("got %v %d", err, n)
	}
	if c := strings.Count(buf.String(), "msg=retry"); c != maxRetries-1 {
		t.Fatalf("got %d retry logs", c)
	}
}
