// Package memory keeps run records in process memory.
package memory

import (
	"github.com/viant/forktree/service/dao/run"
	"github.com/viant/forktree/service/dao/store"
	"github.com/viant/forktree/service/simulator"
)

// Service is an in-memory run store, safe for concurrent use.
type Service struct {
	*store.MemoryStore[string, simulator.Result]
}

var _ run.Service = (*Service)(nil)

// New creates an empty store.
func New() *Service {
	return &Service{MemoryStore: store.NewMemoryStore(run.Key, run.Fields)}
}
