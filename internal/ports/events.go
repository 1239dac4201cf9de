package ports

import "context"

// EventPublisher is the outbound domain-event publish port. The outbox
// worker drives it; the application only enqueues.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}
