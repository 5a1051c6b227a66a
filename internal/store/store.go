package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a document id does not exist in a collection.
var ErrNotFound = errors.New("document not found")

// Filter is an equality condition on a top-level document field. Equality is
// the only operator this core queries with.
type Filter struct {
	Field string
	Value any
}

// Document is one raw record returned by a query, in fetch order.
type Document struct {
	ID   string
	Data map[string]any
}

// Store exposes document-collection semantics over whichever backend the
// deployment is configured with.
type Store interface {
	Get(ctx context.Context, collection, id string) (map[string]any, error)
	Set(ctx context.Context, collection, id string, data map[string]any) error
	// Update merges the given fields into an existing document. Fields not
	// listed are left untouched (blind field-level merge, last writer wins).
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Query(ctx context.Context, collection string, filters []Filter, limit int) ([]Document, error)
	NewID(collection string) string
	Close() error
}

// Encode converts a model into the map shape stores persist.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	return data, nil
}

// Decode fills a model from a stored document map.
func Decode(data map[string]any, v any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	return nil
}
