package amqp

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

const maxBackoff = 30 * time.Second

// exponentialBackoff returns the wait before retry n, doubling from one
// second and capped at maxBackoff.
func exponentialBackoff(attempt int) time.Duration {
	d := time.Second << attempt
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

// isConnectionError reports whether the error looks like a broken broker
// connection worth redialing for.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{"connection refused", "connection closed", "connection reset", "EOF", "broken pipe", "channel/connection is not open"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// DialWithRetry keeps dialing the broker until it succeeds or the context
// ends.
func DialWithRetry(ctx context.Context, url, exchangeName, queueName string) (*Client, error) {
	for attempt := 0; ; attempt++ {
		client, err := NewClient(url, exchangeName, queueName)
		if err == nil {
			return client, nil
		}
		wait := exponentialBackoff(attempt)
		slog.WarnContext(ctx, "AMQP dial failed, retrying",
			"error", err,
			"attempt", attempt,
			"wait", wait)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}
