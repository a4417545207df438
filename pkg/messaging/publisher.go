// Package messaging defines the event publishing contract used by the service layer.
package messaging

import (
	"context"
)

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

// IdentifiedEvent is an Event with a unique id the broker can use for deduplication.
type IdentifiedEvent interface {
	Event
	ID() string
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher discards every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}
