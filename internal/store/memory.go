package store

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

type memoryCollection struct {
	docs  map[string]map[string]any
	order []string
}

// memoryStore keeps documents in process memory, preserving insertion order
// for queries. It backs demo deployments and tests.
type memoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

func NewMemory() Store {
	return &memoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *memoryStore) collection(name string) *memoryCollection {
	c, ok := s.collections[name]
	if !ok {
		c = &memoryCollection{docs: make(map[string]map[string]any)}
		s.collections[name] = c
	}
	return c
}

func (s *memoryStore) Get(_ context.Context, collection, id string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	data, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}

	return cloneDoc(data), nil
}

func (s *memoryStore) Set(_ context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = cloneDoc(data)

	return nil
}

func (s *memoryStore) Update(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	doc, exists := c.docs[id]
	if !exists {
		doc = make(map[string]any)
		c.order = append(c.order, id)
		c.docs[id] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}

	return nil
}

func (s *memoryStore) Query(_ context.Context, collection string, filters []Filter, limit int) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}

	var docs []Document
	for _, id := range c.order {
		data := c.docs[id]
		if !matchesFilters(data, filters) {
			continue
		}
		docs = append(docs, Document{ID: id, Data: cloneDoc(data)})
		if limit > 0 && len(docs) >= limit {
			break
		}
	}

	return docs, nil
}

func (s *memoryStore) NewID(string) string {
	return uuid.New().String()
}

func (s *memoryStore) Close() error {
	return nil
}

func matchesFilters(data map[string]any, filters []Filter) bool {
	for _, f := range filters {
		if !reflect.DeepEqual(data[f.Field], f.Value) {
			return false
		}
	}
	return true
}

func cloneDoc(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
