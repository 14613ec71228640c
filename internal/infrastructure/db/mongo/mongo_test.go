package mongo

import (
	"context"
	"testing"
	"time"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions(Config{URI: "mongodb://localhost:27017"}, 3*time.Second)

	if opts.AppName == nil || *opts.AppName != appName {
		t.Fatalf("expected app name %q", appName)
	}
	if opts.ServerSelectionTimeout == nil || *opts.ServerSelectionTimeout != 3*time.Second {
		t.Fatalf("unexpected server selection timeout: %v", opts.ServerSelectionTimeout)
	}
	if opts.RetryWrites == nil || !*opts.RetryWrites {
		t.Fatal("expected retryable writes")
	}
}

func TestConnect_RequiresDatabase(t *testing.T) {
	if _, _, err := Connect(context.Background(), Config{URI: "mongodb://localhost:27017"}); err == nil {
		t.Fatal("expected error without a database name")
	}
}
