package generators

import "errors"

var (
	// ErrRetryable marks transient gateway failures
	ErrRetryable = errors.New("retryable")

	ErrUnexpectedResponse = errors.New("unexpected response format")

	ErrNoAPIKey = errors.New("no api key")
)
