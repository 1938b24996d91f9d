package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"microblog-service/internal/custom_errors"
	"microblog-service/internal/logger"
	"microblog-service/internal/metrics"
	"microblog-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         *logger.Logger
	metrics     metrics.MetricsProvider
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log *logger.Logger, metrics metrics.MetricsProvider) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
		metrics:     metrics,
	}
}

type CreatePostRequest struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

func (h *CreatePostHandler) Handle(c echo.Context) error {
	req := new(CreatePostRequest)
	if err := c.Bind(req); err != nil {
		h.log.Debug("Failed to bind create post request", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			// A missing or non-positive user id cannot reference an existing
			// user, so it reads as "unknown user" rather than a malformed body.
			if fieldErr.Field() == "UserID" {
				return echo.NewHTTPError(http.StatusNotFound, "user not found")
			}
		}
		h.log.Debug("Create post request failed validation", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "content must not be empty")
	}

	post, err := h.postService.CreatePost(c.Request().Context(), &model.CreatePostDTO{
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostValidation):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "content must not be empty")
		case errors.Is(err, custom_errors.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	h.metrics.IncrementPostsCreated()
	return c.JSON(http.StatusCreated, post)
}
