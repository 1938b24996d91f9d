package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"microblog-service/internal/config"
	post_http "microblog-service/internal/delivery/http/post"
	user_http "microblog-service/internal/delivery/http/user"
	"microblog-service/internal/logger"
	"microblog-service/internal/metrics"
)

type Server struct {
	echo    *echo.Echo
	address string
	port    int
	log     *logger.Logger
}

func NewServer(
	userAPI *user_http.UserAPI,
	postAPI *post_http.PostAPI,
	cfg config.HTTPServer,
	rateLimit config.RateLimit,
	log *logger.Logger,
	metricsProvider metrics.MetricsProvider,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echo_middleware.Recover())
	e.Use(requestMetrics(metricsProvider))
	if rateLimit.Enabled {
		e.Use(echo_middleware.RateLimiter(
			echo_middleware.NewRateLimiterMemoryStore(rate.Limit(rateLimit.RequestsPerSecond)),
		))
	}

	userAPI.Register(e)
	postAPI.Register(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	return &Server{
		echo:    e,
		address: cfg.Address,
		port:    cfg.Port,
		log:     log,
	}
}

// Handler returns the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)
	s.log.Info("Starting HTTP server", slog.String("address", address))

	if err := s.echo.Start(address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func requestMetrics(m metrics.MetricsProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			m.IncrementHTTPRequests(c.Request().Method, c.Path(), strconv.Itoa(status))
			m.RecordHTTPRequestDuration(c.Request().Method, c.Path(), time.Since(start))
			return err
		}
	}
}
