package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"microblog-service/internal/cache"
	redis_cache "microblog-service/internal/cache/redis"
	"microblog-service/internal/config"
	delivery_http "microblog-service/internal/delivery/http"
	post_http "microblog-service/internal/delivery/http/post"
	user_http "microblog-service/internal/delivery/http/user"
	"microblog-service/internal/logger"
	"microblog-service/internal/metrics"
	post_postgres "microblog-service/internal/repository/post/postgres"
	"microblog-service/internal/repository/postgres"
	user_postgres "microblog-service/internal/repository/user/postgres"
	post_service "microblog-service/internal/service/post"
	user_service "microblog-service/internal/service/user"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Error("Failed to ping postgres", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Schema must exist before the first request is served.
	if err := postgres.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath, log); err != nil {
		log.Error("Failed to run database migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	metricsProvider := metrics.NewPrometheusMetricsProvider()
	metricsProvider.SetServiceHealth(true)

	userRepo := user_postgres.NewUserRepository(pool, log)
	postRepo := post_postgres.NewPostRepository(pool, log)
	unitOfWork := postgres.NewPostgresUOW(pool, log)

	var userSvc user_service.Service = user_service.NewUserService(userRepo, unitOfWork, log, metricsProvider)
	var postSvc post_service.Service = post_service.NewPostService(postRepo, unitOfWork, log, metricsProvider)

	if cfg.Redis.Enabled {
		redisClient, err := redis_cache.NewClient(cfg.Redis, log)
		if err != nil {
			log.Error("Failed to create Redis client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
			}
		}()

		var userCache cache.UserCache = redis_cache.NewUserCache(redisClient, log)
		var postCache cache.PostCache = redis_cache.NewPostCache(redisClient, log)
		userSvc = user_service.NewUserServiceCacheDecorator(userSvc, userCache, log)
		postSvc = post_service.NewPostServiceCacheDecorator(postSvc, postCache, log)
	}

	userAPI := user_http.NewUserAPI(userSvc, log, metricsProvider)
	postAPI := post_http.NewPostAPI(postSvc, log, metricsProvider)

	server := delivery_http.NewServer(userAPI, postAPI, cfg.HTTPServer, cfg.RateLimit, log, metricsProvider)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)

	go func() {
		if err := server.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	<-quit
	log.Info("Shutting down server...")

	metricsProvider.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	<-done

	log.Info("Server exited")
}
