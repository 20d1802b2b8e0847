// Package store provides a generic in-memory dao.Service.
package store

import (
	"context"
	"sync"

	"github.com/viant/forktree/service/dao"
	"github.com/viant/forktree/service/dao/criteria"
)

// MemoryStore keeps records in insertion order, keyed by keySelector. When
// fieldSelector is set, List filters records through criteria.Match.
type MemoryStore[K comparable, T any] struct {
	mu            sync.RWMutex
	records       map[K]*T
	order         []K
	keySelector   func(*T) K
	fieldSelector func(*T) map[string]string
}

// NewMemoryStore creates a store. fieldSelector may be nil.
func NewMemoryStore[K comparable, T any](keySelector func(*T) K, fieldSelector func(*T) map[string]string) *MemoryStore[K, T] {
	return &MemoryStore[K, T]{
		records:       make(map[K]*T),
		keySelector:   keySelector,
		fieldSelector: fieldSelector,
	}
}

// Save stores or overwrites a record.
func (s *MemoryStore[K, T]) Save(_ context.Context, v *T) error {
	if v == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(v)
	var zero K
	if key == zero {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		s.order = append(s.order, key)
	}
	s.records[key] = v
	return nil
}

// Load returns a record by key.
func (s *MemoryStore[K, T]) Load(_ context.Context, key K) (*T, error) {
	var zero K
	if key == zero {
		return nil, dao.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return v, nil
}

// Delete removes a record.
func (s *MemoryStore[K, T]) Delete(_ context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return dao.ErrNotFound
	}
	delete(s.records, key)
	for i, candidate := range s.order {
		if candidate == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns the matching records in insertion order.
func (s *MemoryStore[K, T]) List(_ context.Context, parameters ...*dao.Parameter) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(s.records))
	for _, key := range s.order {
		v := s.records[key]
		if s.fieldSelector != nil && !criteria.Match(s.fieldSelector(v), parameters) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
