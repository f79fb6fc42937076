package generators

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/reusee/fash/logs"
	"google.golang.org/genai"
)

var retryBackoff = 1 * time.Second

const maxRetries = 5

func doWithRetry[T any](
	ctx context.Context,
	logger logs.Logger,
	fn func() (T, error),
) (ret T, err error) {
	for i := range maxRetries {
		ret, err = fn()
		if err == nil {
			return
		}
		if !isRetryable(err) || i == maxRetries-1 {
			return
		}
		logger.WarnContext(ctx, "retry",
			"attempt", i+1,
			"error", err,
		)
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-time.After(retryBackoff * time.Duration(1<<i)):
		}
	}
	return
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests ||
		code == http.StatusServiceUnavailable ||
		code == http.StatusBadGateway
}

func isRetryable(err error) bool {
	if errors.Is(err, ErrRetryable) {
		return true
	}
	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) && isRetryableStatus(geminiErr.Code) {
		return true
	}
	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) && isRetryableStatus(openaiErr.StatusCode) {
		return true
	}
	return false
}
