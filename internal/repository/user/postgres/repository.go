package user_repository_postgres

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

type UserRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewUserRepository(db db.PgDB, log *logger.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"name":         user.Name,
		"created_time": now,
	}

	query := `
		INSERT INTO users (name, created_time)
		VALUES (@name, @created_time)
		RETURNING id, name, created_time`

	var createdUser model.User
	err := r.db.QueryRow(ctx, query, args).Scan(
		&createdUser.ID,
		&createdUser.Name,
		&createdUser.CreatedTime,
	)

	if err != nil {
		r.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &createdUser, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, name, created_time FROM users WHERE id = @id`

	row := r.db.QueryRow(ctx, query, args)
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.CreatedTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = @id)`

	var exists bool
	err := r.db.QueryRow(ctx, query, args).Scan(&exists)
	if err != nil {
		r.log.Error("Error checking user existence", slog.Int64("id", id), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	return exists, nil
}
