package repository

import (
	"context"
	"fmt"
	"sync"

	"nocturne/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.UserProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)
}

type userRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.UserProfile
	log   *zap.Logger
}

func NewUserRepository(log *zap.Logger) UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]entity.UserProfile),
		log:   log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = *user
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id.String(), ErrNotFound)
	}
	return &user, nil
}
