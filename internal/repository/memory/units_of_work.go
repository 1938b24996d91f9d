package memory

import (
	"context"

	post_repository "microblog-service/internal/repository/post"
	post_memory "microblog-service/internal/repository/post/memory"
	"microblog-service/internal/repository/postgres"
	user_repository "microblog-service/internal/repository/user"
	user_memory "microblog-service/internal/repository/user/memory"
)

// MemoryUnitOfWork satisfies postgres.UnitOfWork over the in-memory
// repositories. Commit and Rollback are no-ops: the memory repositories apply
// writes immediately, which is enough for service and handler tests.
type MemoryUnitOfWork struct {
	userRepo *user_memory.UserRepository
	postRepo *post_memory.PostRepository
}

func NewMemoryUOW(userRepo *user_memory.UserRepository, postRepo *post_memory.PostRepository) postgres.UnitOfWork {
	return &MemoryUnitOfWork{userRepo: userRepo, postRepo: postRepo}
}

func (uow *MemoryUnitOfWork) Begin(ctx context.Context) (postgres.Transaction, error) {
	return &MemoryTransaction{userRepo: uow.userRepo, postRepo: uow.postRepo}, nil
}

type MemoryTransaction struct {
	userRepo *user_memory.UserRepository
	postRepo *post_memory.PostRepository
}

func (t *MemoryTransaction) Commit(ctx context.Context) error {
	return nil
}

func (t *MemoryTransaction) Rollback(ctx context.Context) error {
	return nil
}

func (t *MemoryTransaction) UserRepository() user_repository.Repository {
	return t.userRepo
}

func (t *MemoryTransaction) PostRepository() post_repository.Repository {
	return t.postRepo
}
