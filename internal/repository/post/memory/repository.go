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

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newPost := &model.Post{
		ID:          r.nextID,
		UserID:      post.UserID,
		Content:     post.Content,
		CreatedTime: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	r.nextID++

	r.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, exists := r.posts[id]
	if !exists {
		r.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}
