package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreStore struct {
	client *firestore.Client
}

// NewFirestore connects to the managed Firestore database. credentialsFile is
// optional; without it the client falls back to application default
// credentials.
func NewFirestore(ctx context.Context, projectID, credentialsFile string) (Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore project id is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &firestoreStore{client: client}, nil
}

func (s *firestoreStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}

	return snap.Data(), nil
}

func (s *firestoreStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("failed to set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *firestoreStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *firestoreStore) Query(ctx context.Context, collection string, filters []Filter, limit int) ([]Document, error) {
	q := s.client.Collection(collection).Query
	for _, f := range filters {
		q = q.Where(f.Field, "==", f.Value)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

func (s *firestoreStore) NewID(collection string) string {
	return s.client.Collection(collection).NewDoc().ID
}

func (s *firestoreStore) Close() error {
	return s.client.Close()
}
