package user_http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"microblog-service/internal/logger"
	"microblog-service/internal/metrics"
	user_service "microblog-service/internal/service/user"
)

var validate = validator.New()

type UserAPI struct {
	createUserHandler *CreateUserHandler
	getUserHandler    *GetUserHandler
}

func NewUserAPI(userService user_service.Service, log *logger.Logger, metrics metrics.MetricsProvider) *UserAPI {
	return &UserAPI{
		createUserHandler: NewCreateUserHandler(userService, validate, log, metrics),
		getUserHandler:    NewGetUserHandler(userService, validate, log),
	}
}

func (a *UserAPI) Register(e *echo.Echo) {
	e.POST("/users", a.createUserHandler.Handle)
	e.GET("/user/:id", a.getUserHandler.Handle)
}
