package post_http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog-service/internal/custom_errors"
	post_http "microblog-service/internal/delivery/http/post"
	"microblog-service/internal/logger"
	"microblog-service/internal/metrics"
	"microblog-service/internal/model"
	"microblog-service/internal/repository/memory"
	post_memory "microblog-service/internal/repository/post/memory"
	user_memory "microblog-service/internal/repository/user/memory"
	post_service "microblog-service/internal/service/post"
	user_service "microblog-service/internal/service/user"
)

func setupPostAPI(t *testing.T) (*echo.Echo, user_service.Service, post_service.Service) {
	t.Helper()
	log := logger.New("test")
	userRepo := user_memory.NewUserRepository(log)
	postRepo := post_memory.NewPostRepository(log)
	uow := memory.NewMemoryUOW(userRepo, postRepo)
	userSvc := user_service.NewUserService(userRepo, uow, log, metrics.NewPrometheusMetricsProvider())
	postSvc := post_service.NewPostService(postRepo, uow, log, metrics.NewPrometheusMetricsProvider())

	e := echo.New()
	post_http.NewPostAPI(postSvc, log, metrics.NewPrometheusMetricsProvider()).Register(e)
	return e, userSvc, postSvc
}

type brokenPostService struct{}

func (b *brokenPostService) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error) {
	return nil, custom_errors.ErrDatabaseQuery
}

func (b *brokenPostService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	return nil, custom_errors.ErrDatabaseQuery
}

func TestCreatePostHandler(t *testing.T) {
	e, userSvc, _ := setupPostAPI(t)

	user, err := userSvc.CreateUser(context.Background(), &model.CreateUserDTO{Name: "Alice"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantDelta  float64
	}{
		{
			name:       "created",
			body:       fmt.Sprintf(`{"user_id":%d,"content":"hi"}`, user.ID),
			wantStatus: http.StatusCreated,
			wantDelta:  1,
		},
		{
			name:       "empty content",
			body:       fmt.Sprintf(`{"user_id":%d,"content":""}`, user.ID),
			wantStatus: http.StatusUnprocessableEntity,
			wantDelta:  0,
		},
		{
			name:       "unknown user",
			body:       `{"user_id":999,"content":"x"}`,
			wantStatus: http.StatusNotFound,
			wantDelta:  0,
		},
		{
			name:       "missing user id",
			body:       `{"content":"hi"}`,
			wantStatus: http.StatusNotFound,
			wantDelta:  0,
		},
		{
			name:       "malformed body",
			body:       `{"user_id":`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDelta:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.PostsCreatedTotal)

			req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDelta, testutil.ToFloat64(metrics.PostsCreatedTotal)-before)

			if tt.wantStatus == http.StatusCreated {
				var post model.Post
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
				assert.Equal(t, user.ID, post.UserID)
				assert.Equal(t, "hi", post.Content)
				assert.NotZero(t, post.ID)
				assert.True(t, post.CreatedTime.Valid)
			}
		})
	}
}

func TestCreatePostHandler_StorageError(t *testing.T) {
	log := logger.New("test")
	e := echo.New()
	post_http.NewPostAPI(&brokenPostService{}, log, metrics.NewPrometheusMetricsProvider()).Register(e)

	before := testutil.ToFloat64(metrics.PostsCreatedTotal)

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"user_id":1,"content":"hi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.PostsCreatedTotal)-before)
	assert.NotContains(t, rec.Body.String(), custom_errors.ErrDatabaseQuery.Error())
}
