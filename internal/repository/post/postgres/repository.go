package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"microblog-service/internal/custom_errors"
	"microblog-service/internal/logger"
	"microblog-service/internal/model"
	"microblog-service/internal/repository/postgres/db"
)

type PostRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewPostRepository(db db.PgDB, log *logger.Logger) *PostRepository {
	return &PostRepository{db: db, log: log}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"user_id":      post.UserID,
		"content":      post.Content,
		"created_time": now,
	}

	query := `
		INSERT INTO posts (user_id, content, created_time)
		VALUES (@user_id, @content, @created_time)
		RETURNING id, user_id, content, created_time`

	var createdPost model.Post
	err := r.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.UserID,
		&createdPost.Content,
		&createdPost.CreatedTime,
	)

	if err != nil {
		// The service checks user existence before inserting; the FK constraint
		// backstops the window between that check and this insert.
		if db.IsForeignKeyViolation(err) {
			r.log.Debug("Referenced user vanished before insert", slog.Int64("user_id", post.UserID))
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &createdPost, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, user_id, content, created_time FROM posts WHERE id = @id`

	row := r.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Content,
		&post.CreatedTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		r.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}
