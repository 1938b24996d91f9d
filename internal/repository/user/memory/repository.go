package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"microblog-service/internal/custom_errors"
	"microblog-service/internal/logger"
	"microblog-service/internal/model"
)

type UserRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[int64]*model.User),
		nextID: 1,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newUser := &model.User{
		ID:          r.nextID,
		Name:        user.Name,
		CreatedTime: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	r.nextID++

	r.users[newUser.ID] = newUser

	result := *newUser
	return &result, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		r.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.users[id]
	return exists, nil
}
