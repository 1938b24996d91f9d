package post_http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"microblog-service/internal/logger"
	"microblog-service/internal/metrics"
	post_service "microblog-service/internal/service/post"
)

var validate = validator.New()

type PostAPI struct {
	createPostHandler *CreatePostHandler
	getPostHandler    *GetPostHandler
}

func NewPostAPI(postService post_service.Service, log *logger.Logger, metrics metrics.MetricsProvider) *PostAPI {
	return &PostAPI{
		createPostHandler: NewCreatePostHandler(postService, validate, log, metrics),
		getPostHandler:    NewGetPostHandler(postService, validate, log),
	}
}

func (a *PostAPI) Register(e *echo.Echo) {
	e.POST("/posts", a.createPostHandler.Handle)
	e.GET("/posts/:id", a.getPostHandler.Handle)
}
