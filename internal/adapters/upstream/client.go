// Package upstream implements the HTTP client for the marketplace API and
// the gateway adapters built on it. Every request carries the caller's
// bearer token when the context holds an authenticated session.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
	apperrors "github.com/agroconecta/console/internal/errors"
)

const defaultTimeout = 15 * time.Second

// Config holds the connection settings for the marketplace API.
type Config struct {
	// BaseURL is the API origin, e.g. "http://localhost:8080".
	BaseURL string
	// Timeout bounds each request end to end. Zero means the default.
	Timeout time.Duration
}

// Client is a thin JSON HTTP client for the marketplace API.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a marketplace API client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("upstream: base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("upstream: parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("upstream: unsupported scheme %q", base.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:   base,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

// call groups the parameters of a single upstream request.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
	out    any
	// skipAuth suppresses the bearer header (login, register).
	skipAuth bool
}

// do executes one request against the marketplace API, attaching the
// context's bearer token unless the call opts out, and decoding a JSON
// response into call.out when non-nil.
func (c *Client) do(ctx context.Context, p call) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + p.path
	if len(p.query) > 0 {
		u.RawQuery = p.query.Encode()
	}

	var bodyReader io.Reader
	if p.body != nil {
		encoded, err := json.Marshal(p.body)
		if err != nil {
			return fmt.Errorf("upstream: encode request: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, p.method, u.String(), bodyReader)
	if err != nil {
		return fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !p.skipAuth {
		if token := domainauth.TokenFromContext(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Upstream("marketplace API unreachable", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	c.logger.DebugContext(ctx, "upstream request",
		slog.String("method", p.method),
		slog.String("path", p.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	if p.out == nil {
		return nil
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(p.out); decodeErr != nil {
		return apperrors.Upstream("decode marketplace API response", decodeErr)
	}
	return nil
}

// errorBody is the upstream error envelope. The API is inconsistent about
// which field carries the human message, so both are read.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// statusError maps a non-2xx upstream response to the console error
// taxonomy. The response body is consumed.
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body errorBody
	_ = json.Unmarshal(raw, &body)
	message := body.Message
	if message == "" {
		message = body.Error
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	cause := fmt.Errorf("upstream status %d", resp.StatusCode)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.AuthenticationFailed(message, cause)
	case http.StatusForbidden:
		return apperrors.Unauthorized(message)
	case http.StatusNotFound:
		return apperrors.NotFound(message)
	case http.StatusConflict:
		return apperrors.Conflict(message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &apperrors.AppError{Code: apperrors.ErrCodeValidation, Message: message, Cause: cause}
	default:
		return apperrors.Upstream(message, cause)
	}
}

// idPath joins a resource path with a numeric id.
func idPath(prefix string, id int64) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}
