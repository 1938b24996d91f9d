package user_http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog-service/internal/custom_errors"
	user_http "microblog-service/internal/delivery/http/user"
	"microblog-service/internal/logger"
	"microblog-service/internal/metrics"
	"microblog-service/internal/model"
	"microblog-service/internal/repository/memory"
	post_memory "microblog-service/internal/repository/post/memory"
	user_memory "microblog-service/internal/repository/user/memory"
	user_service "microblog-service/internal/service/user"
)

func setupUserAPI(t *testing.T) (*echo.Echo, user_service.Service) {
	t.Helper()
	log := logger.New("test")
	userRepo := user_memory.NewUserRepository(log)
	postRepo := post_memory.NewPostRepository(log)
	uow := memory.NewMemoryUOW(userRepo, postRepo)
	svc := user_service.NewUserService(userRepo, uow, log, metrics.NewPrometheusMetricsProvider())

	e := echo.New()
	user_http.NewUserAPI(svc, log, metrics.NewPrometheusMetricsProvider()).Register(e)
	return e, svc
}

type brokenUserService struct{}

func (b *brokenUserService) CreateUser(ctx context.Context, dto *model.CreateUserDTO) (*model.User, error) {
	return nil, custom_errors.ErrDatabaseQuery
}

func (b *brokenUserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return nil, custom_errors.ErrDatabaseQuery
}

func TestCreateUserHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantDelta  float64
	}{
		{
			name:       "created",
			body:       `{"name":"Alice"}`,
			wantStatus: http.StatusCreated,
			wantDelta:  1,
		},
		{
			name:       "empty name",
			body:       `{"name":""}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDelta:  0,
		},
		{
			name:       "missing name",
			body:       `{}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDelta:  0,
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusUnprocessableEntity,
			wantDelta:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupUserAPI(t)

			before := testutil.ToFloat64(metrics.UsersCreatedTotal)

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDelta, testutil.ToFloat64(metrics.UsersCreatedTotal)-before)

			if tt.wantStatus == http.StatusCreated {
				var user model.User
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
				assert.Equal(t, "Alice", user.Name)
				assert.NotZero(t, user.ID)
				assert.True(t, user.CreatedTime.Valid)
			}
		})
	}
}

func TestCreateUserHandler_StorageError(t *testing.T) {
	log := logger.New("test")
	e := echo.New()
	user_http.NewUserAPI(&brokenUserService{}, log, metrics.NewPrometheusMetricsProvider()).Register(e)

	before := testutil.ToFloat64(metrics.UsersCreatedTotal)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.UsersCreatedTotal)-before)

	// The raw storage error never reaches the client.
	assert.NotContains(t, rec.Body.String(), custom_errors.ErrDatabaseQuery.Error())
}
