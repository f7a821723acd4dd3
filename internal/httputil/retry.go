// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across components.
package httputil

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// RetryBaseDelay is the default base duration between delivery attempts.
// Tests override this to avoid real sleeps.
var RetryBaseDelay = 1 * time.Second

const defaultMaxAttempts = 3

// DoWithRetry executes an HTTP request with bounded retry. Transport
// errors, HTTP 429 and HTTP 5xx are retried; any other response is
// returned immediately. The wait before attempt k is k*baseDelay (linear).
// The per-attempt timeout is the client's Timeout combined with the
// request context.
//
// When maxAttempts is 0 the default (3) is used; when baseDelay is 0
// RetryBaseDelay is used. After the last attempt the final response or
// error is returned as-is. A cancelled request context surfaces as the
// transport error of the attempt it interrupted.
func DoWithRetry(client *http.Client, req *http.Request, maxAttempts int, baseDelay time.Duration) (*http.Response, error) {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = RetryBaseDelay
	}

	var resp *http.Response
	var err error

	for attempt := 1; ; attempt++ {
		resp, err = client.Do(cloneRequest(req))
		if err == nil && !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		if attempt >= maxAttempts {
			return resp, err
		}

		// Drain and close the failed response before retrying.
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		wait := time.Duration(attempt) * baseDelay
		select {
		case <-req.Context().Done():
			if err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("retry wait interrupted: %w", req.Context().Err())
		case <-time.After(wait):
		}
	}
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// cloneRequest copies the request and rewinds its body so it can be sent
// again. Requests built with http.NewRequest from a bytes.Reader carry a
// GetBody that makes this safe.
func cloneRequest(req *http.Request) *http.Request {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			clone.Body = body
		}
	}
	return clone
}
