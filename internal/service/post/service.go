package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"microblog-service/internal/custom_errors"
	"microblog-service/internal/logger"
	"microblog-service/internal/metrics"
	"microblog-service/internal/model"
	post_repository "microblog-service/internal/repository/post"
	"microblog-service/internal/repository/postgres"
)

type PostService struct {
	postRepo post_repository.Repository
	uow      postgres.UnitOfWork
	log      *logger.Logger
	metrics  metrics.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		uow:      uow,
		log:      log,
		metrics:  metrics,
	}
}

func (s *PostService) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (result *model.Post, err error) {
	if strings.TrimSpace(dto.Content) == "" {
		s.log.Debug("Rejected post with empty content", slog.Int64("user_id", dto.UserID))
		return nil, custom_errors.ErrPostValidation
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
				s.log.Debug("Rollback after failed post creation", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	// The caller gets a semantic "unknown user" error instead of a constraint
	// violation. The check and the insert share a transaction, and the FK
	// constraint covers the remaining window.
	exists, err := tx.UserRepository().Exists(ctx, dto.UserID)
	if err != nil {
		s.metrics.IncrementDatabaseQueries("create_post", false)
		s.log.Error("Failed to check user existence", slog.Int64("user_id", dto.UserID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	if !exists {
		s.log.Debug("Post references unknown user", slog.Int64("user_id", dto.UserID))
		return nil, custom_errors.ErrUserNotFound
	}

	createdPost, err := tx.PostRepository().Create(ctx, &model.Post{
		UserID:  dto.UserID,
		Content: dto.Content,
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User deleted between existence check and insert", slog.Int64("user_id", dto.UserID))
			return nil, custom_errors.ErrUserNotFound
		}
		s.metrics.IncrementDatabaseQueries("create_post", false)
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.metrics.IncrementDatabaseQueries("create_post", false)
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementDatabaseQueries("create_post", true)
	return createdPost, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			s.metrics.IncrementDatabaseQueries("get_post", true)
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			s.metrics.IncrementDatabaseQueries("get_post", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementDatabaseQueries("get_post", true)
	return post, nil
}
