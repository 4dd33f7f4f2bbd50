package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/equipbook/equipbook/shared/api"
	"github.com/equipbook/equipbook/shared/errors"
	"github.com/equipbook/equipbook/shared/logger"
)

// APIClient struct handles all communication with the equipment backend.
//
// Read methods never fail: on any failure they log, count the fallback and
// return an empty value of their result type. Write methods return a
// *errors.Failure whose message is the backend's own error text when it sent
// one. ToggleFavorite reports failure in its result instead.
type APIClient struct {
	BaseURL      string
	HttpClient   *http.Client
	Normalizer   Normalizer
	PopularLimit int
}

type Options struct {
	// Timeout bounds a single backend round trip. Zero means no timeout.
	Timeout      time.Duration
	Normalizer   Normalizer
	PopularLimit int
}

// New creates a client for the backend rooted at baseURL (".../api").
func New(baseURL string, opts Options) *APIClient {
	if opts.Normalizer == (Normalizer{}) {
		opts.Normalizer = DefaultNormalizer
	}
	if opts.PopularLimit <= 0 {
		opts.PopularLimit = defaultPopularLimit
	}
	return &APIClient{
		BaseURL:      baseURL,
		HttpClient:   &http.Client{Timeout: opts.Timeout},
		Normalizer:   opts.Normalizer,
		PopularLimit: opts.PopularLimit,
	}
}

const defaultPopularLimit = 6

// do sends one request to the backend on behalf of the browser request r,
// forwarding its cookies so the backend sees the same session.
func (c *APIClient) do(r *http.Request, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(r.Context(), method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for _, cookie := range r.Cookies() {
		req.AddCookie(cookie)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// call performs a full round trip: serialize payload, send, check the status,
// check for an application error and decode into out (when out is non-nil).
// Any failure is a *errors.Failure carrying defaultMsg unless the backend
// supplied its own message.
func (c *APIClient) call(r *http.Request, op, method, path string, payload, out any, defaultMsg string) (err error) {
	start := time.Now()
	defer func() { observeCall(op, start, err) }()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errors.NewFailure(op, errors.ErrParse, err, defaultMsg, 0)
		}
		body = bytes.NewReader(encoded)
	}

	resp, err := c.do(r, method, path, body)
	if err != nil {
		return errors.NewFailure(op, errors.ErrNetwork, err, defaultMsg, 0)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewFailure(op, errors.ErrNetwork, err, defaultMsg, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		cause := fmt.Errorf("backend returned status %d", resp.StatusCode)
		return errors.NewFailure(op, errors.ErrHTTPStatus, cause, serverMessage(raw, defaultMsg), resp.StatusCode)
	}

	if msg, ok := applicationError(raw); ok {
		return errors.NewFailure(op, errors.ErrApplication, nil, msg, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.NewFailure(op, errors.ErrParse, err, defaultMsg, resp.StatusCode)
	}
	return nil
}

// read is call for GET operations that fall back instead of failing. It
// reports whether out was filled.
func (c *APIClient) read(r *http.Request, op, path string, out any) bool {
	if err := c.call(r, op, http.MethodGet, path, nil, out, "failed to load "+op); err != nil {
		c.fallback(op, err)
		return false
	}
	return true
}

func (c *APIClient) fallback(op string, err error) {
	kind := "unknown"
	var failure *errors.Failure
	if errors.As(err, &failure) {
		kind = failure.Kind()
		logger.Log.Warn("backend call failed, using fallback", "op", op, "kind", kind, "status", failure.StatusCode, "error", failure.Detail())
	} else {
		logger.Log.Warn("backend call failed, using fallback", "op", op, "error", err)
	}
	fallbacksTotal.WithLabelValues(op, kind).Inc()
}

// serverMessage extracts the backend's "error" (or "message") field from an
// error body.
func serverMessage(raw []byte, defaultMsg string) string {
	var body api.ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return defaultMsg
	}
	if body.Error != "" {
		return body.Error
	}
	if body.Message != "" {
		return body.Message
	}
	return defaultMsg
}

// applicationError reports a 2xx body that is an object with a non-empty
// "error" field.
func applicationError(raw []byte) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}
	var body api.ErrorResponse
	if err := json.Unmarshal(trimmed, &body); err != nil || body.Error == "" {
		return "", false
	}
	return body.Error, true
}
