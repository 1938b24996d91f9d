package user_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog-service/internal/custom_errors"
	"microblog-service/internal/logger"
	"microblog-service/internal/metrics"
	"microblog-service/internal/model"
	"microblog-service/internal/repository/memory"
	"microblog-service/internal/repository/postgres"
	post_memory "microblog-service/internal/repository/post/memory"
	user_memory "microblog-service/internal/repository/user/memory"
	user_service "microblog-service/internal/service/user"
)

func setupUserService(t *testing.T) (*user_service.UserService, *user_memory.UserRepository) {
	t.Helper()
	log := logger.New("test")
	userRepo := user_memory.NewUserRepository(log)
	postRepo := post_memory.NewPostRepository(log)
	uow := memory.NewMemoryUOW(userRepo, postRepo)
	svc := user_service.NewUserService(userRepo, uow, log, metrics.NewPrometheusMetricsProvider())
	return svc, userRepo
}

type failingUOW struct{}

func (f *failingUOW) Begin(ctx context.Context) (postgres.Transaction, error) {
	return nil, custom_errors.ErrDatabaseConnection
}

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name    string
		dto     *model.CreateUserDTO
		wantErr error
	}{
		{
			name:    "success",
			dto:     &model.CreateUserDTO{Name: "Alice"},
			wantErr: nil,
		},
		{
			name:    "empty name",
			dto:     &model.CreateUserDTO{Name: ""},
			wantErr: custom_errors.ErrUserValidation,
		},
		{
			name:    "whitespace name",
			dto:     &model.CreateUserDTO{Name: "   "},
			wantErr: custom_errors.ErrUserValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := setupUserService(t)

			got, err := svc.CreateUser(context.Background(), tt.dto)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				// Nothing may be persisted on a rejected create.
				_, getErr := repo.GetByID(context.Background(), 1)
				assert.ErrorIs(t, getErr, custom_errors.ErrUserNotFound)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.dto.Name, got.Name)
				assert.NotZero(t, got.ID)
				assert.True(t, got.CreatedTime.Valid)
			}
		})
	}
}

func TestUserService_CreateUser_StorageError(t *testing.T) {
	log := logger.New("test")
	userRepo := user_memory.NewUserRepository(log)
	svc := user_service.NewUserService(userRepo, &failingUOW{}, log, metrics.NewPrometheusMetricsProvider())

	got, err := svc.CreateUser(context.Background(), &model.CreateUserDTO{Name: "Alice"})

	assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	assert.Nil(t, got)
}

func TestUserService_GetUserByID(t *testing.T) {
	svc, _ := setupUserService(t)

	created, err := svc.CreateUser(context.Background(), &model.CreateUserDTO{Name: "Alice"})
	require.NoError(t, err)

	t.Run("create then get returns the same entity", func(t *testing.T) {
		got, err := svc.GetUserByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Name, got.Name)
		assert.Equal(t, created.CreatedTime, got.CreatedTime)
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := svc.GetUserByID(context.Background(), 999)
		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
		assert.Nil(t, got)
	})
}
