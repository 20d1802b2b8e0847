// Package memory implements a bounded in-process queue.
package memory

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/viant/forktree/internal/idgen"
	"github.com/viant/forktree/service/messaging"
)

var (
	// ErrQueueFull is returned by Publish when the buffer is full.
	ErrQueueFull = errors.New("queue is full")

	// ErrProcessed is returned when a message is acked or nacked twice.
	ErrProcessed = errors.New("message already processed")
)

// Config for the memory queue.
type Config struct {
	// MaxRetries is how often a nacked message is redelivered before it is
	// moved to the dead letter list.
	MaxRetries  int
	QueueBuffer int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{MaxRetries: 3, QueueBuffer: 1024}
}

// Message is a queued payload.
type Message[T any] struct {
	id         string
	payload    T
	queue      *Queue[T]
	retryCount int
	mu         sync.Mutex
	processed  bool
}

// ID returns the message id.
func (m *Message[T]) ID() string {
	return m.id
}

// T returns the message payload.
func (m *Message[T]) T() *T {
	return &m.payload
}

// Ack marks the message processed.
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return ErrProcessed
	}
	m.processed = true
	return nil
}

// Nack requeues the message until MaxRetries is exceeded, then moves it to
// the dead letter list.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	if m.processed {
		m.mu.Unlock()
		return ErrProcessed
	}
	m.processed = true
	m.mu.Unlock()

	if m.retryCount < m.queue.config.MaxRetries {
		retry := &Message[T]{id: m.id, payload: m.payload, queue: m.queue, retryCount: m.retryCount + 1}
		if pushErr := m.queue.push(retry); pushErr == nil {
			return nil
		}
	}
	m.queue.dlqMu.Lock()
	m.queue.dlq = append(m.queue.dlq, m)
	m.queue.dlqMu.Unlock()
	return nil
}

// Queue is an in-memory messaging.Queue. Publish never blocks.
type Queue[T any] struct {
	messages chan *Message[T]
	config   Config
	dlq      []*Message[T]
	dlqMu    sync.Mutex
}

var _ messaging.Queue[any] = (*Queue[any])(nil)

// NewQueue creates a queue.
func NewQueue[T any](config Config) *Queue[T] {
	if config.QueueBuffer <= 0 {
		config.QueueBuffer = DefaultConfig().QueueBuffer
	}
	return &Queue[T]{
		messages: make(chan *Message[T], config.QueueBuffer),
		config:   config,
	}
}

// Publish adds a copy of t, failing with ErrQueueFull when the buffer is full.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return q.push(&Message[T]{id: idgen.New(), payload: *t, queue: q})
}

func (q *Queue[T]) push(msg *Message[T]) error {
	select {
	case q.messages <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Consume waits for the next message or for ctx to be done.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	select {
	case msg := <-q.messages:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size returns the number of queued messages.
func (q *Queue[T]) Size() int {
	return len(q.messages)
}

// DLQSize returns the number of dead letters.
func (q *Queue[T]) DLQSize() int {
	q.dlqMu.Lock()
	defer q.dlqMu.Unlock()
	return len(q.dlq)
}
