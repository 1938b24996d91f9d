package cache

import (
	"context"

	"microblog-service/internal/model"
)

//go:generate mockery --name UserCache --dir . --output ../../mocks --outpkg mocks --with-expecter
type UserCache interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	SetUser(ctx context.Context, user *model.User) error
}

//go:generate mockery --name PostCache --dir . --output ../../mocks --outpkg mocks --with-expecter
type PostCache interface {
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	SetPost(ctx context.Context, post *model.Post) error
}
