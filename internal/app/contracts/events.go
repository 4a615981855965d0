package contracts

import "context"

// EventPublisher emits best-effort domain events. Publishing failures
// must never fail the operation that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}
