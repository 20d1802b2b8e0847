// Package event publishes simulation outcomes on a queue so that consumers
// outside the simulator can follow a run.
package event

import (
	"time"

	"github.com/viant/forktree/internal/clock"
)

// Event types.
const (
	TypeApplied  = "applied"
	TypeRejected = "rejected"
)

// Context identifies where an event comes from.
type Context struct {
	RunID     string `json:"runID" yaml:"runID"`
	Step      int    `json:"step" yaml:"step"`
	EventType string `json:"eventType" yaml:"eventType"`
}

// Event wraps a payload with its context.
type Event[T any] struct {
	Context   *Context  `json:"context" yaml:"context"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	Data      T         `json:"data" yaml:"data"`
}

// NewEvent creates an event stamped with the current time.
func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: clock.Now(),
		Data:      data,
	}
}
