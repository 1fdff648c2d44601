package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/marketplace/invoicing/internal/client/http"
)

func fastRetry(maxRetries int) *httpclient.RetryConfig {
	return &httpclient.RetryConfig{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
		MaxElapsedTime:  time.Second,
	}
}

func TestRetry(t *testing.T) {
	errTransient := errors.New("503 slow down")
	errFatal := errors.New("422 invalid recipient")

	tests := []struct {
		name      string
		config    *httpclient.RetryConfig
		failures  int
		permanent bool
		wantCalls int
		wantErr   error
	}{
		{name: "succeeds first time", config: fastRetry(3), failures: 0, wantCalls: 1},
		{name: "recovers after transient failures", config: fastRetry(3), failures: 2, wantCalls: 3},
		{name: "gives up after max retries", config: fastRetry(2), failures: 10, wantCalls: 3, wantErr: errTransient},
		{name: "permanent errors stop immediately", config: fastRetry(3), failures: 10, permanent: true, wantCalls: 1, wantErr: errFatal},
		{name: "no retries configured", config: nil, failures: 10, wantCalls: 1, wantErr: errTransient},
		{name: "permanent without retries is unwrapped", config: nil, failures: 1, permanent: true, wantCalls: 1, wantErr: errFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := httpclient.Retry(context.Background(), tt.config, "test", func() error {
				calls++
				if calls <= tt.failures {
					if tt.permanent {
						return httpclient.Permanent(errFatal)
					}
					return errTransient
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := httpclient.Retry(ctx, fastRetry(5), "test", func() error {
		calls++
		return errors.New("unavailable")
	})

	require.Error(t, err)
	assert.LessOrEqual(t, calls, 1)
}

func TestNewClient_Middleware(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "outer,inner", r.Header.Get("X-Order"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tag := func(name string) httpclient.Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return roundTripFunc(func(req *http.Request) (*http.Response, error) {
				if existing := req.Header.Get("X-Order"); existing != "" {
					req.Header.Set("X-Order", existing+","+name)
				} else {
					req.Header.Set("X-Order", name)
				}
				return next.RoundTrip(req)
			})
		}
	}

	client := httpclient.NewClient(
		httpclient.WithTimeout(5*time.Second),
		httpclient.WithMiddleware(tag("outer")),
		httpclient.WithMiddleware(tag("inner")),
		httpclient.WithMiddleware(httpclient.LoggingMiddleware()),
	)
	assert.Equal(t, 5*time.Second, client.Timeout)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestStatusRecorderMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantPermanent bool
	}{
		{name: "success", status: http.StatusOK, wantPermanent: false},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantPermanent: true},
		{name: "forbidden", status: http.StatusForbidden, wantPermanent: true},
		{name: "rate limited", status: http.StatusTooManyRequests, wantPermanent: false},
		{name: "request timeout", status: http.StatusRequestTimeout, wantPermanent: false},
		{name: "server error", status: http.StatusBadGateway, wantPermanent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := httpclient.NewClient(httpclient.WithMiddleware(httpclient.StatusRecorderMiddleware()))
			ctx, status := httpclient.WithResponseStatus(context.Background())

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
			require.NoError(t, err)
			resp, err := client.Do(req)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.status, status.Code())
			assert.Equal(t, tt.wantPermanent, status.IsPermanentFailure())
		})
	}
}

func TestRecordStatus_WithoutRecorder(t *testing.T) {
	assert.NotPanics(t, func() {
		httpclient.RecordStatus(context.Background(), http.StatusTeapot)
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
