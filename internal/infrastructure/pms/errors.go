package pms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrInvalidRequest marks failures detected before anything was sent.
var ErrInvalidRequest = errors.New("invalid request")

const (
	transportFailureMessage = "unable to reach the server"
	cancelledMessage        = "request cancelled"
	invalidResponseMessage  = "invalid response from server"
)

// APIError is the single failure shape of every client operation. Error()
// returns Message verbatim so callers can display it as-is.
type APIError struct {
	Op      string
	Status  int // 0 when no HTTP response was received
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Transport reports whether the request was sent but never produced an HTTP
// response.
func (e *APIError) Transport() bool {
	return e != nil && e.Status == 0 && !errors.Is(e.Err, ErrInvalidRequest)
}

// Invalid reports whether the request was rejected locally.
func (e *APIError) Invalid() bool {
	return e != nil && errors.Is(e.Err, ErrInvalidRequest)
}

func invalidRequestError(op, msg string, cause error) *APIError {
	err := ErrInvalidRequest
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidRequest, cause)
	}
	return &APIError{Op: op, Message: msg, Err: err}
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func transportError(op string, err error) *APIError {
	msg := transportFailureMessage
	if errors.Is(err, context.Canceled) {
		msg = cancelledMessage
	}
	return &APIError{Op: op, Message: msg, Err: err}
}

// statusError builds the error for a non-2xx response. The JSON "error" field
// wins, then "message"; anything else falls back to "HTTP {status}: {text}".
func statusError(op string, resp *http.Response, body []byte) *APIError {
	msg := decodeErrorMessage(body)
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, statusText(resp))
	}
	return &APIError{
		Op:      op,
		Status:  resp.StatusCode,
		Message: msg,
		Err:     fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode),
	}
}

func decodeErrorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := unmarshal(body, &payload); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return msg
	}
	return strings.TrimSpace(payload.Message)
}

// statusText extracts the reason phrase from resp.Status ("401 Unauthorized").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
