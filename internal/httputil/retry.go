// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by provider clients.
package httputil

import (
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 500 * time.Millisecond

const defaultMaxRetries = 3

// RetryTransport is an http.RoundTripper that retries requests answered
// with HTTP 429 (Too Many Requests). The delay starts at RetryBaseDelay and
// doubles each attempt. Only requests without a body are retried; the maps
// web services are all GET.
type RetryTransport struct {
	// Base performs the actual requests. Nil means http.DefaultTransport.
	Base http.RoundTripper

	// MaxRetries is the number of retries after the first attempt. Zero
	// uses the default (3).
	MaxRetries int
}

// NewClient returns an http.Client with the given timeout whose transport
// retries 429 responses.
func NewClient(timeout time.Duration, maxRetries int) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &RetryTransport{MaxRetries: maxRetries},
	}
}

// RoundTrip implements http.RoundTripper. After exhausting retries the last
// 429 response is returned so the caller can inspect it. If the request
// context is cancelled during a backoff wait, RoundTrip returns ctx.Err().
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	maxRetries := t.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	ctx := req.Context()
	for attempt := 0; ; attempt++ {
		resp, err := base.RoundTrip(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries || req.Body != nil && req.Body != http.NoBody {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
