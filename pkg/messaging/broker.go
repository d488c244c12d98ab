package messaging

import "context"

// Broker publishes messages to named channels. Used for the best-effort
// stock discrepancy feed; publishing failures are never fatal.
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}
