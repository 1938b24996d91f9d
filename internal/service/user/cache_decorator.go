package user_service

import (
	"context"
	"log/slog"

	"microblog-service/internal/cache"
	"microblog-service/internal/logger"
	"microblog-service/internal/model"
)

// UserServiceCacheDecorator serves reads from Redis when possible. Cache
// failures are logged and the call falls through to the database.
type UserServiceCacheDecorator struct {
	service   Service
	userCache cache.UserCache
	log       *logger.Logger
}

func NewUserServiceCacheDecorator(service Service, userCache cache.UserCache, log *logger.Logger) Service {
	return &UserServiceCacheDecorator{
		service:   service,
		userCache: userCache,
		log:       log,
	}
}

func (d *UserServiceCacheDecorator) CreateUser(ctx context.Context, dto *model.CreateUserDTO) (*model.User, error) {
	created, err := d.service.CreateUser(ctx, dto)
	if err != nil {
		return nil, err
	}

	if err := d.userCache.SetUser(ctx, created); err != nil {
		d.log.Warn("Failed to cache created user",
			slog.Int64("user_id", created.ID),
			slog.String("error", err.Error()))
	}

	return created, nil
}

func (d *UserServiceCacheDecorator) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	if cached, err := d.userCache.GetUser(ctx, id); err == nil {
		d.log.Debug("User served from cache", slog.Int64("user_id", id))
		return cached, nil
	}

	user, err := d.service.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.userCache.SetUser(ctx, user); err != nil {
		d.log.Warn("Failed to cache user after read",
			slog.Int64("user_id", id),
			slog.String("error", err.Error()))
	}

	return user, nil
}
