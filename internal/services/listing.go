package services

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/tarun-1313/PrepInterview/internal/demo"
	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/repositories"
	"github.com/tarun-1313/PrepInterview/internal/store"
)

// Over-fetch buffer so the owner-exclusion filter does not under-fill the
// page.
const ownerExclusionBuffer = 50

type ListingService interface {
	// ListLatest returns finalized interviews ranked for the user. Read
	// failures degrade to an empty page; an empty store degrades to the
	// seed set.
	ListLatest(ctx context.Context, userID string, limit int) []models.RecommendedInterview
	// GetByID resolves an interview from the store, falling back to the
	// seed set for unseeded environments.
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	// ListByUser returns the user's own interviews, newest first.
	ListByUser(ctx context.Context, userID string) []models.Interview
}

type listingService struct {
	userRepo      repositories.UserRepository
	interviewRepo repositories.InterviewRepository
	seed          demo.Provider
	defaultLimit  int
}

func NewListingService(
	userRepo repositories.UserRepository,
	interviewRepo repositories.InterviewRepository,
	seed demo.Provider,
	defaultLimit int,
) ListingService {
	return &listingService{
		userRepo:      userRepo,
		interviewRepo: interviewRepo,
		seed:          seed,
		defaultLimit:  defaultLimit,
	}
}

// ListLatest implements ListingService.
func (s *listingService) ListLatest(ctx context.Context, userID string, limit int) []models.RecommendedInterview {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	// An absent profile is fine: every score is 0, ordering falls back to
	// fetch order.
	profile, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		profile = nil
	}

	interviews, err := s.interviewRepo.FindLatestFinalized(ctx, limit+ownerExclusionBuffer)
	if err != nil {
		log.Printf("⚠️  Failed to list finalized interviews: %v\n", err)
		return []models.RecommendedInterview{}
	}

	if len(interviews) == 0 {
		return s.seedPage()
	}

	ranked := make([]models.RecommendedInterview, 0, len(interviews))
	for _, interview := range interviews {
		if interview.UserID == userID {
			continue
		}
		ranked = append(ranked, models.RecommendedInterview{
			Interview:           interview,
			RecommendationScore: RecommendationScore(profile, &interview),
		})
	}

	// Stable sort: equal scores keep the store's fetch order, which encodes
	// freshness.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RecommendationScore > ranked[j].RecommendationScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// GetByID implements ListingService.
func (s *listingService) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(ctx, id)
	if err == nil {
		return interview, nil
	}

	if fallback := s.seed.InterviewByID(id); fallback != nil {
		return fallback, nil
	}

	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}

	return nil, err
}

// ListByUser implements ListingService.
func (s *listingService) ListByUser(ctx context.Context, userID string) []models.Interview {
	interviews, err := s.interviewRepo.FindByUserID(ctx, userID)
	if err != nil {
		log.Printf("⚠️  Failed to list interviews for user %s: %v\n", userID, err)
		return []models.Interview{}
	}

	// Entries without a creation timestamp cannot be ordered; drop them.
	valid := interviews[:0]
	for _, interview := range interviews {
		if !interview.CreatedAt.IsZero() {
			valid = append(valid, interview)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].CreatedAt.After(valid[j].CreatedAt)
	})

	return valid
}

func (s *listingService) seedPage() []models.RecommendedInterview {
	seeded := s.seed.Interviews()
	page := make([]models.RecommendedInterview, 0, len(seeded))
	for _, interview := range seeded {
		page = append(page, models.RecommendedInterview{Interview: interview})
	}
	return page
}
