package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"microblog-service/internal/custom_errors"
	"microblog-service/internal/logger"
	"microblog-service/internal/model"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	validate    *validator.Validate
	log         *logger.Logger
}

func NewGetPostHandler(postService PostGetter, validate *validator.Validate, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type GetPostRequest struct {
	PostID int64 `validate:"required,gt=0"`
}

func (h *GetPostHandler) Handle(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Debug("Non-numeric post id", slog.String("id", c.Param("id")))
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	if err := h.validate.Struct(&GetPostRequest{PostID: id}); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	post, err := h.postService.GetPostByID(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusOK, post)
}
