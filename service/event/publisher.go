package event

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/viant/forktree/service/messaging"
)

// Publisher sends and receives events of type T over a queue.
type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
}

// NewPublisher creates a publisher over queue.
func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{queue: queue}
}

// Publish enqueues event.
func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	return p.queue.Publish(ctx, event)
}

// Consume waits for the next event and acknowledges it.
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}

// Drain hands every event already queued to handle without waiting for
// more, and returns how many were handled. An event whose handler fails is
// nacked, so the queue redelivers it until its retries are used up. The
// queue must report its size.
func (p *Publisher[T]) Drain(ctx context.Context, handle func(*Event[T]) error) (int, error) {
	sized, ok := p.queue.(interface{ Size() int })
	if !ok {
		return 0, errors.New("event queue does not report its size")
	}
	handled := 0
	for sized.Size() > 0 {
		msg, err := p.queue.Consume(ctx)
		if err != nil {
			return handled, err
		}
		if herr := handle(msg.T()); herr != nil {
			if err = msg.Nack(herr); err != nil {
				return handled, err
			}
			continue
		}
		if err = msg.Ack(); err != nil {
			return handled, err
		}
		handled++
	}
	return handled, nil
}

// DeadLetters returns how many events exhausted their retries, or 0 when the
// queue keeps no dead letters.
func (p *Publisher[T]) DeadLetters() int {
	if dlq, ok := p.queue.(interface{ DLQSize() int }); ok {
		return dlq.DLQSize()
	}
	return 0
}
