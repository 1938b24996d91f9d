package post_service

import (
	"context"

	"microblog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}
