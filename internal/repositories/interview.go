package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/store"
)

const interviewsCollection = "interviews"

type InterviewRepository interface {
	FindByID(ctx context.Context, id string) (*models.Interview, error)
	// FindLatestFinalized returns up to limit finalized interviews in the
	// store's fetch order.
	FindLatestFinalized(ctx context.Context, limit int) ([]models.Interview, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Interview, error)
	Create(ctx context.Context, interview *models.Interview) error
}

type interviewRepository struct {
	store store.Store
}

func NewInterviewRepository(s store.Store) InterviewRepository {
	return &interviewRepository{store: s}
}

// FindByID implements InterviewRepository.
func (r *interviewRepository) FindByID(ctx context.Context, id string) (*models.Interview, error) {
	data, err := r.store.Get(ctx, interviewsCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("interview not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}

	return decodeInterview(id, data)
}

// FindLatestFinalized implements InterviewRepository.
func (r *interviewRepository) FindLatestFinalized(ctx context.Context, limit int) ([]models.Interview, error) {
	docs, err := r.store.Query(ctx, interviewsCollection,
		[]store.Filter{{Field: "finalized", Value: true}}, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query finalized interviews: %w", err)
	}

	return decodeInterviews(docs)
}

// FindByUserID implements InterviewRepository.
func (r *interviewRepository) FindByUserID(ctx context.Context, userID string) ([]models.Interview, error) {
	docs, err := r.store.Query(ctx, interviewsCollection,
		[]store.Filter{{Field: "userId", Value: userID}}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query interviews for user %s: %w", userID, err)
	}

	return decodeInterviews(docs)
}

// Create implements InterviewRepository. A missing id is minted.
func (r *interviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	if interview.ID == "" {
		interview.ID = r.store.NewID(interviewsCollection)
	}

	data, err := store.Encode(interview)
	if err != nil {
		return fmt.Errorf("failed to encode interview: %w", err)
	}
	delete(data, "id")

	if err := r.store.Set(ctx, interviewsCollection, interview.ID, data); err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}

	return nil
}

func decodeInterview(id string, data map[string]any) (*models.Interview, error) {
	var interview models.Interview
	if err := store.Decode(data, &interview); err != nil {
		return nil, fmt.Errorf("failed to decode interview %s: %w", id, err)
	}
	interview.ID = id
	return &interview, nil
}

func decodeInterviews(docs []store.Document) ([]models.Interview, error) {
	interviews := make([]models.Interview, 0, len(docs))
	for _, doc := range docs {
		interview, err := decodeInterview(doc.ID, doc.Data)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *interview)
	}
	return interviews, nil
}
