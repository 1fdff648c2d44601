package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/logger"
)

// ClientOption represents a function that can modify the HTTP client
type ClientOption func(*http.Client, *[]Middleware)

// Middleware represents a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// RetryConfig configures the retry behavior of outbound provider calls
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxElapsedTime  time.Duration
}

// DefaultRetryConfig provides sensible defaults for retries
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:      3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2.0,
		MaxElapsedTime:  20 * time.Second,
	}
}

// NewClient returns an *http.Client for provider SDKs that accept one.
func NewClient(options ...ClientOption) *http.Client {
	client := &http.Client{Timeout: 30 * time.Second}
	var middlewares []Middleware

	for _, option := range options {
		option(client, &middlewares)
	}

	if len(middlewares) > 0 {
		transport := client.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		// Apply middlewares in reverse order so the first one is outermost
		for i := len(middlewares) - 1; i >= 0; i-- {
			transport = middlewares[i](transport)
		}
		client.Transport = transport
	}
	return client
}

// WithTimeout sets the timeout for all requests
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *http.Client, _ *[]Middleware) {
		c.Timeout = timeout
	}
}

// WithMiddleware adds a middleware to the client
func WithMiddleware(middleware Middleware) ClientOption {
	return func(_ *http.Client, m *[]Middleware) {
		*m = append(*m, middleware)
	}
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Retry runs operation with exponential backoff until it succeeds, returns a Permanent error,
// the retry budget is spent or ctx is done.
func Retry(ctx context.Context, config *RetryConfig, name string, operation func() error) error {
	if config == nil || config.MaxRetries <= 0 {
		return unwrapPermanent(operation())
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = config.InitialInterval
	expBackoff.MaxInterval = config.MaxInterval
	expBackoff.Multiplier = config.Multiplier
	expBackoff.MaxElapsedTime = config.MaxElapsedTime

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(config.MaxRetries)), ctx)
	notify := func(err error, wait time.Duration) {
		logger.Warn("Retrying provider call",
			zap.String("operation", name),
			zap.Duration("wait", wait),
			zap.Error(err))
	}
	return backoff.RetryNotify(operation, policy, notify)
}

func unwrapPermanent(err error) error {
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}

type responseStatusKey struct{}

// ResponseStatus holds the status code of the last response sent under its context.
type ResponseStatus struct {
	code int
}

// WithResponseStatus attaches a ResponseStatus to ctx. Clients built with
// StatusRecorderMiddleware fill it in, so callers of SDKs that hide the status code
// can still classify failures.
func WithResponseStatus(ctx context.Context) (context.Context, *ResponseStatus) {
	status := &ResponseStatus{}
	return context.WithValue(ctx, responseStatusKey{}, status), status
}

// RecordStatus stores code in the ResponseStatus carried by ctx, if any.
func RecordStatus(ctx context.Context, code int) {
	if status, ok := ctx.Value(responseStatusKey{}).(*ResponseStatus); ok {
		status.code = code
	}
}

// Code returns the recorded status, or 0 when no response arrived.
func (s *ResponseStatus) Code() int {
	return s.code
}

// IsPermanentFailure reports a 4xx that repeating the request will not fix.
// Timeouts and rate limits stay retryable.
func (s *ResponseStatus) IsPermanentFailure() bool {
	switch {
	case s.code == http.StatusRequestTimeout, s.code == http.StatusTooManyRequests:
		return false
	default:
		return s.code >= 400 && s.code < 500
	}
}

// StatusRecorderMiddleware records response status codes into the request context.
func StatusRecorderMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if err == nil {
				RecordStatus(req.Context(), resp.StatusCode)
			}
			return resp, err
		})
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// LoggingMiddleware creates a middleware that logs requests and responses
func LoggingMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &loggingRoundTripper{next: next}
	}
}

type loggingRoundTripper struct {
	next http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()))

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		logger.Error("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Error(err),
			zap.Duration("duration", duration))
		return resp, err
	}

	logger.Debug("HTTP response received",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}
