package pms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

type staticToken string

func (s staticToken) Token(context.Context) string { return string(s) }

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL}, zerolog.Nop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, server
}

func TestNewClient_DefaultsBaseURL(t *testing.T) {
	client, err := NewClient(Config{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.BaseURL() != DefaultBaseURL {
		t.Fatalf("expected %s, got %s", DefaultBaseURL, client.BaseURL())
	}
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "localhost"}, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for url without scheme")
	}
}

func TestDo_AttachesBearerFromTokenSource(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("unexpected Authorization: %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected Content-Type: %q", got)
		}
		_, _ = w.Write([]byte(`{"totalUsers":3}`))
	})

	stats, err := client.WithTokenSource(staticToken("abc")).Users().Statistics(context.Background())
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalUsers != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDo_OmitsAuthorizationWithoutToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no Authorization header, got %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := client.WithTokenSource(staticToken("")).Users().ListActive(context.Background()); err != nil {
		t.Fatalf("list active: %v", err)
	}
}

func TestDo_ErrorNormalization(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "json error field", status: http.StatusConflict, body: `{"error":"Username already taken"}`, message: "Username already taken"},
		{name: "json message field", status: http.StatusBadRequest, body: `{"message":"typeName is required"}`, message: "typeName is required"},
		{name: "html body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, message: "HTTP 502: Bad Gateway"},
		{name: "empty body", status: http.StatusInternalServerError, body: ``, message: "HTTP 500: Internal Server Error"},
		{name: "json without message", status: http.StatusForbidden, body: `{"status":403}`, message: "HTTP 403: Forbidden"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := client.Users().Get(context.Background(), 7)
			apiErr, ok := AsAPIError(err)
			if !ok {
				t.Fatalf("expected *APIError, got %T (%v)", err, err)
			}
			if apiErr.Message != tc.message || err.Error() != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, apiErr.Message)
			}
			if apiErr.Status != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, apiErr.Status)
			}
			if apiErr.Op != "users.get" {
				t.Fatalf("unexpected op: %s", apiErr.Op)
			}
		})
	}
}

func TestDo_TransportFailureIsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient(Config{BaseURL: url}, zerolog.Nop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Financial().Dashboard(context.Background())
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if !apiErr.Transport() {
		t.Fatalf("expected transport failure, got status %d", apiErr.Status)
	}
	if apiErr.Message != transportFailureMessage {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
	if errors.Unwrap(apiErr) == nil {
		t.Fatalf("expected wrapped cause")
	}
}

func TestDo_UndecodableSuccessBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not-json`))
	})

	_, err := client.RoomTypes().Get(context.Background(), 1)
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.Message != invalidResponseMessage || apiErr.Status != http.StatusOK {
		t.Fatalf("unexpected error: %#v", err)
	}
}

func TestDo_RepeatedReadsAreIndependent(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query, got %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"id":1,"username":"ada","role":"ADMIN","active":true}]`))
	})

	first, err := client.Users().List(context.Background(), domain.UserFilter{})
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := client.Users().List(context.Background(), domain.UserFilter{})
	if err != nil {
		t.Fatalf("second list: %v", err)
	}

	if hits.Load() != 2 {
		t.Fatalf("expected 2 backend requests, got %d", hits.Load())
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("payloads differ: %+v vs %+v", first, second)
	}
}
