package user_http

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

type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type GetUserHandler struct {
	userService UserGetter
	validate    *validator.Validate
	log         *logger.Logger
}

func NewGetUserHandler(userService UserGetter, validate *validator.Validate, log *logger.Logger) *GetUserHandler {
	return &GetUserHandler{
		userService: userService,
		validate:    validate,
		log:         log,
	}
}

type GetUserRequest struct {
	UserID int64 `validate:"required,gt=0"`
}

func (h *GetUserHandler) Handle(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.log.Debug("Non-numeric user id", slog.String("id", c.Param("id")))
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	if err := h.validate.Struct(&GetUserRequest{UserID: id}); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	user, err := h.userService.GetUserByID(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusOK, user)
}
