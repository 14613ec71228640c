package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout      = 5 * time.Second
	defaultPingAttempts = 3
	pingBackoff         = 500 * time.Millisecond
)

// Config captures the settings for the console's Redis connection, shared by
// the credential store and the submit guard.
type Config struct {
	Addr     string
	Password string
	DB       int
	// Timeout bounds each startup ping.
	Timeout time.Duration
	// PingAttempts is how many pings Connect tries before giving up.
	PingAttempts int
}

// Connect opens a Redis client and waits for the server to answer a ping,
// retrying with a linear backoff while it starts up.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	attempts := cfg.PingAttempts
	if attempts <= 0 {
		attempts = defaultPingAttempts
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	var err error
	for i := 1; i <= attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			return client, nil
		}
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, fmt.Errorf("redis ping: %w", ctx.Err())
		case <-time.After(time.Duration(i) * pingBackoff):
		}
	}

	_ = client.Close()
	return nil, fmt.Errorf("redis ping after %d attempts: %w", attempts, err)
}
