package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/communiteer/welcomehub/internal/pkg/apperrors"
)

const (
	// DefaultTimeout bounds a single forward.
	DefaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of a rejected response is kept for logs.
	maxErrorBody = 4 << 10

	tracerName = "github.com/communiteer/welcomehub/internal/pkg/webhook"
)

// Client forwards JSON payloads to an external webhook.
type Client interface {
	Post(ctx context.Context, url string, payload any) error
}

// RejectedError is returned when the webhook answers with a non-2xx status.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("webhook responded with status %d", e.StatusCode)
}

// Unwrap lets errors.Is match apperrors.ErrUpstreamRejected.
func (e *RejectedError) Unwrap() error {
	return apperrors.ErrUpstreamRejected
}

type clientImpl struct {
	http   *http.Client
	tracer trace.Tracer
}

// Option configures the client.
type Option func(*clientImpl)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientImpl) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a webhook client with the given per-request timeout.
// A zero or negative timeout uses DefaultTimeout.
func NewClient(timeout time.Duration, opts ...Option) Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &clientImpl{
		http:   &http.Client{Timeout: timeout},
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Post sends payload as JSON. A transport failure wraps
// apperrors.ErrUpstreamUnreachable; a non-2xx response returns *RejectedError
// carrying the (truncated) response body.
func (c *clientImpl) Post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding payload: %w", err)
	}

	ctx, span := c.tracer.Start(ctx, "webhook.post", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("http.request.method", http.MethodPost))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return fmt.Errorf("%w: error creating request: %w", apperrors.ErrUpstreamUnreachable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return fmt.Errorf("%w: %w", apperrors.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		span.SetStatus(codes.Error, resp.Status)
		return &RejectedError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
