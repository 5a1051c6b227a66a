package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/store"
)

const usersCollection = "users"

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.UserProfile, error)
	// UpdateProfile merges the given fields into the stored profile. Fields
	// not present are left untouched; there is no optimistic locking.
	UpdateProfile(ctx context.Context, id string, fields map[string]any) error
}

type userRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

// FindByID implements UserRepository.
func (r *userRepository) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	data, err := r.store.Get(ctx, usersCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	var profile models.UserProfile
	if err := store.Decode(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", id, err)
	}
	profile.ID = id

	return &profile, nil
}

// UpdateProfile implements UserRepository.
func (r *userRepository) UpdateProfile(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	if err := r.store.Update(ctx, usersCollection, id, fields); err != nil {
		return fmt.Errorf("failed to update user %s: %w", id, err)
	}

	return nil
}
