// Package pms is the typed client for the hotel property-management backend.
//
// Every resource group (auth, users, room types, property, financial) goes
// through Client.Do, which performs exactly one HTTP request per call and
// converts every failure into an *APIError.
package pms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/api/metrics"
)

const (
	DefaultBaseURL  = "http://localhost:8080"
	maxResponseSize = 4 << 20
)

// TokenSource yields the bearer token of the caller's browsing context, or
// "" when none is stored.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Config controls client construction. A zero Timeout means requests are
// bounded only by the caller's context.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client issues requests against the PMS REST API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

// Request describes one backend call.
type Request struct {
	Op     string
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Auth attaches the bearer token from Token, or from the client's
	// TokenSource when Token is empty.
	Auth  bool
	Token string
}

func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid api base url: %s", base)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		http:    hc,
		log:     log.With().Str("component", "pms_client").Logger(),
	}, nil
}

// BaseURL returns the normalized backend endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// WithTokenSource returns a shallow copy of c reading tokens from ts.
func (c *Client) WithTokenSource(ts TokenSource) *Client {
	clone := *c
	clone.tokens = ts
	return &clone
}

func (c *Client) Auth() *AuthService           { return &AuthService{c: c} }
func (c *Client) Users() *UserService          { return &UserService{c: c} }
func (c *Client) RoomTypes() *RoomTypeService  { return &RoomTypeService{c: c} }
func (c *Client) Property() *PropertyService   { return &PropertyService{c: c} }
func (c *Client) Financial() *FinancialService { return &FinancialService{c: c} }

// Do executes req and decodes a successful JSON body into out (which may be
// nil). Every returned error is an *APIError.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	start := time.Now()
	status, err := c.do(ctx, req, out)
	c.observe(req, status, err, time.Since(start))
	return err
}

func (c *Client) do(ctx context.Context, req Request, out any) (int, error) {
	op := req.Op
	if op == "" {
		op = req.Method + " " + req.Path
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return 0, invalidRequestError(op, "invalid request payload", err)
		}
		body = bytes.NewReader(payload)
	}

	target := c.baseURL + ensureLeadingSlash(req.Path)
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, invalidRequestError(op, "invalid request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.Auth {
		if token := c.resolveToken(ctx, req.Token); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, transportError(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, transportError(op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, statusError(op, resp, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}
	if err := unmarshal(raw, out); err != nil {
		return resp.StatusCode, &APIError{Op: op, Status: resp.StatusCode, Message: invalidResponseMessage, Err: err}
	}
	return resp.StatusCode, nil
}

func (c *Client) resolveToken(ctx context.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token(ctx)
}

func (c *Client) observe(req Request, status int, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		var apiErr *APIError
		switch {
		case errors.As(err, &apiErr) && apiErr.Invalid():
			outcome = "invalid_request"
		case apiErr != nil && apiErr.Transport():
			outcome = "transport_error"
		case status >= 200 && status < 300:
			outcome = "decode_error"
		default:
			outcome = "http_error"
		}
	}
	metrics.BackendRequestsTotal.WithLabelValues(req.Op, outcome).Inc()
	metrics.BackendRequestDuration.WithLabelValues(req.Op).Observe(elapsed.Seconds())

	evt := c.log.Debug()
	if err != nil {
		evt = c.log.Warn().Err(err)
	}
	evt.Str("op", req.Op).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("backend request")
}

// call runs req and decodes the payload into a fresh T.
func call[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T
	if err := c.Do(ctx, req, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func unmarshal(raw []byte, out any) error {
	return json.Unmarshal(raw, out)
}

func ensureLeadingSlash(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "/"
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	return "/" + trimmed
}
