package post_service

import (
	"context"
	"log/slog"

	"microblog-service/internal/cache"
	"microblog-service/internal/logger"
	"microblog-service/internal/model"
)

// PostServiceCacheDecorator serves post reads from Redis when possible. Cache
// failures are logged and the call falls through to the database.
type PostServiceCacheDecorator struct {
	service   Service
	postCache cache.PostCache
	log       *logger.Logger
}

func NewPostServiceCacheDecorator(service Service, postCache cache.PostCache, log *logger.Logger) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error) {
	created, err := d.service.CreatePost(ctx, dto)
	if err != nil {
		return nil, err
	}

	if err := d.postCache.SetPost(ctx, created); err != nil {
		d.log.Warn("Failed to cache created post",
			slog.Int64("post_id", created.ID),
			slog.String("error", err.Error()))
	}

	return created, nil
}

func (d *PostServiceCacheDecorator) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	if cached, err := d.postCache.GetPost(ctx, id); err == nil {
		d.log.Debug("Post served from cache", slog.Int64("post_id", id))
		return cached, nil
	}

	post, err := d.service.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post after read",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}

	return post, nil
}
