package repositories

import (
	"context"
	"fmt"

	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/store"
)

const feedbackCollection = "feedback"

type FeedbackRepository interface {
	// FindByInterviewAndUser returns the single feedback record for the
	// pair, or nil when none exists yet.
	FindByInterviewAndUser(ctx context.Context, interviewID, userID string) (*models.Feedback, error)
	// Save writes the record under feedback.ID, minting one when empty, and
	// returns the id actually used.
	Save(ctx context.Context, feedback *models.Feedback) (string, error)
}

type feedbackRepository struct {
	store store.Store
}

func NewFeedbackRepository(s store.Store) FeedbackRepository {
	return &feedbackRepository{store: s}
}

// FindByInterviewAndUser implements FeedbackRepository.
func (r *feedbackRepository) FindByInterviewAndUser(ctx context.Context, interviewID, userID string) (*models.Feedback, error) {
	docs, err := r.store.Query(ctx, feedbackCollection, []store.Filter{
		{Field: "interviewId", Value: interviewID},
		{Field: "userId", Value: userID},
	}, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}

	if len(docs) == 0 {
		return nil, nil
	}

	var feedback models.Feedback
	if err := store.Decode(docs[0].Data, &feedback); err != nil {
		return nil, fmt.Errorf("failed to decode feedback %s: %w", docs[0].ID, err)
	}
	feedback.ID = docs[0].ID

	return &feedback, nil
}

// Save implements FeedbackRepository.
func (r *feedbackRepository) Save(ctx context.Context, feedback *models.Feedback) (string, error) {
	if feedback.ID == "" {
		feedback.ID = r.store.NewID(feedbackCollection)
	}

	data, err := store.Encode(feedback)
	if err != nil {
		return "", fmt.Errorf("failed to encode feedback: %w", err)
	}
	delete(data, "id")

	if err := r.store.Set(ctx, feedbackCollection, feedback.ID, data); err != nil {
		return "", fmt.Errorf("failed to save feedback: %w", err)
	}

	return feedback.ID, nil
}
