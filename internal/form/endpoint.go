package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Result is the outcome of a request that reached the server.
type Result struct {
	StatusCode int
	// Error is the server-provided "error" string, if any.
	Error string
}

// OK reports a 2xx status.
func (r Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Endpoint delivers a form payload to the submission server. A returned
// error means the server could not be reached.
type Endpoint interface {
	Post(ctx context.Context, path string, payload any) (Result, error)
}

// HTTPEndpoint posts JSON to a submission server rooted at BaseURL.
type HTTPEndpoint struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPEndpoint creates an endpoint for baseURL with a bounded timeout.
func NewHTTPEndpoint(baseURL string, timeout time.Duration) *HTTPEndpoint {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPEndpoint{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// Post sends payload to BaseURL+path.
func (e *HTTPEndpoint) Post(ctx context.Context, path string, payload any) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("error encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("error posting form: %w", err)
	}
	defer resp.Body.Close()

	result := Result{StatusCode: resp.StatusCode}
	if !result.OK() {
		var reply struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 16<<10))
		if json.Unmarshal(data, &reply) == nil {
			result.Error = strings.TrimSpace(reply.Error)
		}
	}
	return result, nil
}
