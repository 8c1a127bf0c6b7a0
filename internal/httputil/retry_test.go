// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Use a tiny base delay so tests finish quickly.
	RetryBaseDelay = 1 * time.Millisecond
}

// statusServer answers with statuses[i] on call i, repeating the last one.
func statusServer(t *testing.T, calls *int32, statuses ...int) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(atomic.AddInt32(calls, 1)) - 1
		if n >= len(statuses) {
			n = len(statuses) - 1
		}
		w.WriteHeader(statuses[n])
	}))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	return client.Do(req)
}

func TestRetryTransport_ImmediateSuccess(t *testing.T) {
	var calls int32
	ts := statusServer(t, &calls, http.StatusOK)

	client := &http.Client{Transport: &RetryTransport{MaxRetries: 5}}
	resp, err := get(t, context.Background(), client, ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRetryTransport_RetriesThen200(t *testing.T) {
	var calls int32
	ts := statusServer(t, &calls, http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusOK)

	client := &http.Client{Transport: &RetryTransport{MaxRetries: 5}}
	resp, err := get(t, context.Background(), client, ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRetryTransport_ExhaustsRetries(t *testing.T) {
	var calls int32
	ts := statusServer(t, &calls, http.StatusTooManyRequests)

	client := &http.Client{Transport: &RetryTransport{MaxRetries: 2}}
	resp, err := get(t, context.Background(), client, ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	// 1 initial + 2 retries.
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRetryTransport_DefaultMaxRetries(t *testing.T) {
	var calls int32
	ts := statusServer(t, &calls, http.StatusTooManyRequests)

	client := NewClient(5*time.Second, 0)
	resp, err := get(t, context.Background(), client, ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	// 1 initial + 3 default retries.
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestRetryTransport_ContextCancelled(t *testing.T) {
	var calls int32
	ts := statusServer(t, &calls, http.StatusTooManyRequests)

	// Use a longer base delay so the context cancels during the wait.
	old := RetryBaseDelay
	RetryBaseDelay = 500 * time.Millisecond
	defer func() { RetryBaseDelay = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	client := &http.Client{Transport: &RetryTransport{MaxRetries: 5}}
	_, err := get(t, ctx, client, ts.URL)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetryTransport_Non429PassesThrough(t *testing.T) {
	var calls int32
	ts := statusServer(t, &calls, http.StatusInternalServerError)

	client := &http.Client{Transport: &RetryTransport{MaxRetries: 5}}
	resp, err := get(t, context.Background(), client, ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
