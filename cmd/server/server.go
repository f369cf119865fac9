package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/hr-dashboard/internal/assignment"
	"github.com/yukikurage/hr-dashboard/internal/cache"
	"github.com/yukikurage/hr-dashboard/internal/config"
	"github.com/yukikurage/hr-dashboard/internal/constants"
	"github.com/yukikurage/hr-dashboard/internal/database"
	"github.com/yukikurage/hr-dashboard/internal/gateway"
	"github.com/yukikurage/hr-dashboard/internal/handlers"
	"github.com/yukikurage/hr-dashboard/internal/middleware"
	"github.com/yukikurage/hr-dashboard/internal/models"
	"github.com/yukikurage/hr-dashboard/internal/repository"
	"github.com/yukikurage/hr-dashboard/internal/sequence"
	"github.com/yukikurage/hr-dashboard/internal/services"
	"github.com/yukikurage/hr-dashboard/internal/validation"
	"go.uber.org/zap"
)

// Supported CACHE_BACKEND values
const (
	cacheBackendDatabase = "database"
	cacheBackendRedis    = "redis"
	cacheBackendMemory   = "memory"
)

func serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	store, err := newCacheStore(cfg)
	if err != nil {
		return err
	}

	sessionStore, err := newSessionStore(cfg)
	if err != nil {
		return err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(logger))
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	handlers.RegisterRoutes(r, newHandlers(cfg, store), time.Now)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("upstream", cfg.UpstreamBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newHandlers(cfg *config.Config, store repository.CacheEntryRepository) handlers.Handlers {
	client := gateway.NewClient(cfg.UpstreamBaseURL, &http.Client{Timeout: cfg.UpstreamTimeout}, logger)
	workerGateway := gateway.NewWorkerGateway(client)
	projectGateway := gateway.NewProjectGateway(client, workerGateway)

	validator := validation.New(nil)
	reconciler := assignment.NewReconciler(cfg.AssignmentStrictCaps)
	tracker := sequence.NewTracker()

	workerService := services.NewWorkerService(
		workerGateway,
		projectGateway,
		cache.NewSoftDeleteCache[models.Worker](constants.WorkerCacheKey, store, logger),
		validator,
		reconciler,
		tracker,
		logger,
	)
	projectService := services.NewProjectService(
		projectGateway,
		cache.NewSoftDeleteCache[models.Project](constants.ProjectCacheKey, store, logger),
		validator,
		reconciler,
		tracker,
		logger,
	)

	return handlers.Handlers{
		Auth:      handlers.NewAuthHandler(services.NewAuthService(gateway.NewAuthGateway(client), time.Now, logger)),
		Workers:   handlers.NewWorkerHandler(workerService),
		Projects:  handlers.NewProjectHandler(projectService),
		Dashboard: handlers.NewDashboardHandler(services.NewStatsService(workerGateway, projectGateway)),
	}
}

func newCacheStore(cfg *config.Config) (repository.CacheEntryRepository, error) {
	switch cfg.CacheBackend {
	case cacheBackendDatabase, "":
		db, err := database.Connect(cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		return repository.NewCacheEntryRepository(db), nil
	case cacheBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
		return repository.NewRedisCacheEntryRepository(client), nil
	case cacheBackendMemory:
		return repository.NewMemoryCacheEntryRepository(), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.CacheBackend)
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	if cfg.SessionStore == "redis" {
		rs, err := redisStore.NewStore(
			10,              // Redis pool size
			"tcp",           // network type
			cfg.RedisAddr(), // Redis address from config
			"",              // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store = rs
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
