package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarun-1313/PrepInterview/internal/demo"
	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/repositories"
	"github.com/tarun-1313/PrepInterview/internal/store"
)

func newListingFixture(t *testing.T) (store.Store, ListingService) {
	t.Helper()

	db := store.NewMemory()
	userRepo := repositories.NewUserRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	svc := NewListingService(userRepo, interviewRepo, demo.NewProvider(), 20)

	return db, svc
}

func seedInterview(t *testing.T, db store.Store, interview models.Interview) {
	t.Helper()

	data, err := store.Encode(&interview)
	require.NoError(t, err)
	delete(data, "id")
	require.NoError(t, db.Set(context.Background(), "interviews", interview.ID, data))
}

func seedProfile(t *testing.T, db store.Store, profile models.UserProfile) {
	t.Helper()

	data, err := store.Encode(&profile)
	require.NoError(t, err)
	delete(data, "id")
	require.NoError(t, db.Set(context.Background(), "users", profile.ID, data))
}

func TestListLatestExcludesOwnInterviews(t *testing.T) {
	db, svc := newListingFixture(t)

	seedInterview(t, db, models.Interview{ID: "i1", UserID: "me", Role: "Backend Engineer", Finalized: true, CreatedAt: time.Now()})
	seedInterview(t, db, models.Interview{ID: "i2", UserID: "someone", Role: "Backend Engineer", Finalized: true, CreatedAt: time.Now()})

	results := svc.ListLatest(context.Background(), "me", 20)

	require.Len(t, results, 1)
	assert.Equal(t, "i2", results[0].ID)
}

func TestListLatestSkipsUnfinalized(t *testing.T) {
	db, svc := newListingFixture(t)

	seedInterview(t, db, models.Interview{ID: "draft", UserID: "a", Finalized: false, CreatedAt: time.Now()})
	seedInterview(t, db, models.Interview{ID: "published", UserID: "a", Finalized: true, CreatedAt: time.Now()})

	results := svc.ListLatest(context.Background(), "me", 20)

	require.Len(t, results, 1)
	assert.Equal(t, "published", results[0].ID)
}

func TestListLatestRanksByScoreWithStableTies(t *testing.T) {
	db, svc := newListingFixture(t)

	seedProfile(t, db, models.UserProfile{ID: "me", PreferredRole: "Frontend Developer"})

	now := time.Now()
	// Fetch order: low, tie-a, high, tie-b. Ties must keep fetch order.
	seedInterview(t, db, models.Interview{ID: "tie-a", UserID: "x", Role: "Data Engineer", Finalized: true, CreatedAt: now})
	seedInterview(t, db, models.Interview{ID: "high", UserID: "x", Role: "Frontend Developer", Finalized: true, CreatedAt: now})
	seedInterview(t, db, models.Interview{ID: "tie-b", UserID: "x", Role: "Product Manager", Finalized: true, CreatedAt: now})

	results := svc.ListLatest(context.Background(), "me", 20)

	require.Len(t, results, 3)
	assert.Equal(t, "high", results[0].ID)
	assert.Equal(t, 50, results[0].RecommendationScore)
	assert.Equal(t, "tie-a", results[1].ID)
	assert.Equal(t, "tie-b", results[2].ID)
	assert.Equal(t, 0, results[1].RecommendationScore)
	assert.Equal(t, 0, results[2].RecommendationScore)
}

func TestListLatestTruncatesToLimit(t *testing.T) {
	db, svc := newListingFixture(t)

	for _, id := range []string{"a", "b", "c", "d"} {
		seedInterview(t, db, models.Interview{ID: id, UserID: "x", Role: "Backend Engineer", Finalized: true, CreatedAt: time.Now()})
	}

	results := svc.ListLatest(context.Background(), "me", 2)

	assert.Len(t, results, 2)
}

func TestListLatestFallsBackToSeedSetWhenStoreEmpty(t *testing.T) {
	_, svc := newListingFixture(t)

	results := svc.ListLatest(context.Background(), "me", 20)

	require.NotEmpty(t, results)
	seeded := demo.NewProvider().Interviews()
	assert.Len(t, results, len(seeded))
	assert.Equal(t, seeded[0].ID, results[0].ID)
	assert.Equal(t, 0, results[0].RecommendationScore)
}

func TestListLatestAbsorbsReadFailure(t *testing.T) {
	db := store.NewMemory()
	svc := NewListingService(
		repositories.NewUserRepository(db),
		&failingInterviewRepo{},
		demo.NewProvider(),
		20,
	)

	results := svc.ListLatest(context.Background(), "me", 20)

	assert.Empty(t, results)
}

func TestGetByIDFallsBackToSeedSet(t *testing.T) {
	_, svc := newListingFixture(t)

	seeded := demo.NewProvider().Interviews()
	interview, err := svc.GetByID(context.Background(), seeded[0].ID)

	require.NoError(t, err)
	require.NotNil(t, interview)
	assert.Equal(t, seeded[0].Role, interview.Role)
}

func TestGetByIDUnknownReturnsNil(t *testing.T) {
	_, svc := newListingFixture(t)

	interview, err := svc.GetByID(context.Background(), "no-such-id")

	require.NoError(t, err)
	assert.Nil(t, interview)
}

func TestListByUserSortsNewestFirstAndDropsUndated(t *testing.T) {
	db, svc := newListingFixture(t)

	seedInterview(t, db, models.Interview{ID: "old", UserID: "me", Finalized: true, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	seedInterview(t, db, models.Interview{ID: "new", UserID: "me", Finalized: true, CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)})
	seedInterview(t, db, models.Interview{ID: "undated", UserID: "me", Finalized: true})

	results := svc.ListByUser(context.Background(), "me")

	require.Len(t, results, 2)
	assert.Equal(t, "new", results[0].ID)
	assert.Equal(t, "old", results[1].ID)
}

type failingInterviewRepo struct{}

func (f *failingInterviewRepo) FindByID(context.Context, string) (*models.Interview, error) {
	return nil, errors.New("store unavailable")
}

func (f *failingInterviewRepo) FindLatestFinalized(context.Context, int) ([]models.Interview, error) {
	return nil, errors.New("store unavailable")
}

func (f *failingInterviewRepo) FindByUserID(context.Context, string) ([]models.Interview, error) {
	return nil, errors.New("store unavailable")
}

func (f *failingInterviewRepo) Create(context.Context, *models.Interview) error {
	return errors.New("store unavailable")
}
