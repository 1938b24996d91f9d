package user_service

import (
	"context"

	"microblog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename UserService.go
type Service interface {
	CreateUser(ctx context.Context, dto *model.CreateUserDTO) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}
