package nets

import (
	"net/http"
	"time"
)

// HTTPClient is shared by the model gateway clients. Requests have no overall timeout since generation can take minutes; cancel the context instead.
type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConnsPerHost:   4,
			TLSHandshakeTimeout:   30 * time.Second,
			ExpectContinueTimeout: time.Second,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}
