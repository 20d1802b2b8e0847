// Package messaging defines a generic queue contract.
package messaging

import (
	"context"
)

// Queue is a message queue for payloads of type T.
type Queue[T any] interface {
	// Publish adds a message with payload t.
	Publish(ctx context.Context, t *T) error

	// Consume waits for the next message.
	Consume(ctx context.Context) (Message[T], error)
}

// Message is a delivered payload awaiting acknowledgement.
type Message[T any] interface {
	T() *T

	// Ack marks the message processed.
	Ack() error

	// Nack reports a processing failure; the message may be redelivered.
	Nack(err error) error
}
