package user_http

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

type UserCreator interface {
	CreateUser(ctx context.Context, dto *model.CreateUserDTO) (*model.User, error)
}

type CreateUserHandler struct {
	userService UserCreator
	validate    *validator.Validate
	log         *logger.Logger
	metrics     metrics.MetricsProvider
}

func NewCreateUserHandler(userService UserCreator, validate *validator.Validate, log *logger.Logger, metrics metrics.MetricsProvider) *CreateUserHandler {
	return &CreateUserHandler{
		userService: userService,
		validate:    validate,
		log:         log,
		metrics:     metrics,
	}
}

type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CreateUserHandler) Handle(c echo.Context) error {
	req := new(CreateUserRequest)
	if err := c.Bind(req); err != nil {
		h.log.Debug("Failed to bind create user request", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Create user request failed validation", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "name must not be empty")
	}

	user, err := h.userService.CreateUser(c.Request().Context(), &model.CreateUserDTO{Name: req.Name})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserValidation):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "name must not be empty")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	h.metrics.IncrementUsersCreated()
	return c.JSON(http.StatusCreated, user)
}
