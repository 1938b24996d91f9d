package user_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"microblog-service/internal/custom_errors"
	"microblog-service/internal/logger"
	"microblog-service/internal/metrics"
	"microblog-service/internal/model"
	user_repository "microblog-service/internal/repository/user"
	"microblog-service/internal/repository/postgres"
)

type UserService struct {
	userRepo user_repository.Repository
	uow      postgres.UnitOfWork
	log      *logger.Logger
	metrics  metrics.MetricsProvider
}

func NewUserService(
	userRepo user_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		log:      log,
		metrics:  metrics,
	}
}

func (s *UserService) CreateUser(ctx context.Context, dto *model.CreateUserDTO) (result *model.User, err error) {
	if strings.TrimSpace(dto.Name) == "" {
		s.log.Debug("Rejected user with empty name")
		return nil, custom_errors.ErrUserValidation
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Debug("Rollback after failed user creation", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	createdUser, err := tx.UserRepository().Create(ctx, &model.User{Name: dto.Name})
	if err != nil {
		s.metrics.IncrementDatabaseQueries("create_user", false)
		s.log.Error("Failed to create user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.metrics.IncrementDatabaseQueries("create_user", false)
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementDatabaseQueries("create_user", true)
	return createdUser, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("User not found", slog.Int64("id", id))
			s.metrics.IncrementDatabaseQueries("get_user", true)
			return nil, custom_errors.ErrUserNotFound
		default:
			s.log.Error("Failed to get user by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			s.metrics.IncrementDatabaseQueries("get_user", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementDatabaseQueries("get_user", true)
	return user, nil
}
