package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/d60-Lab/lazybook/docs"
	"github.com/d60-Lab/lazybook/internal/api/handler"
	"github.com/d60-Lab/lazybook/internal/api/router"
	"github.com/d60-Lab/lazybook/internal/chat"
	"github.com/d60-Lab/lazybook/internal/config"
	"github.com/d60-Lab/lazybook/internal/database"
	"github.com/d60-Lab/lazybook/internal/repository"
	"github.com/d60-Lab/lazybook/internal/service"
	"github.com/d60-Lab/lazybook/internal/storage"
	"github.com/d60-Lab/lazybook/pkg/logger"
	"github.com/d60-Lab/lazybook/pkg/token"
	"github.com/d60-Lab/lazybook/pkg/tracing"
)

// @title Lazybook API
// @version 1.0
// @description Social networking service: accounts, posts, follows, feeds and direct messaging.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Server.LogLevel, cfg.Server.Development); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Observability.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{DSN: cfg.Observability.SentryDSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	shutdownTracing, err := tracing.Init(ctx, "lazybook", cfg.Observability.OTLPEndpoint)
	if err != nil {
		logger.Error("tracing init failed", zap.Error(err))
	} else {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracing(flushCtx)
		}()
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Error("database connect failed", zap.Error(err))
		return
	}
	if err := database.Migrate(db); err != nil {
		logger.Error("migration failed", zap.Error(err))
		return
	}
	logger.Info("database ready",
		zap.String("driver", cfg.Database.Driver))

	cache := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer cache.Close()

	blobs, err := storage.NewFileStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		logger.Error("upload dir unavailable", zap.Error(err))
		return
	}

	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	msgRepo := repository.NewMessageRepository(db)
	hub := chat.NewHub()

	h := handler.New(
		service.NewAuthService(userRepo, followRepo, tokens, blobs),
		service.NewFollowService(userRepo, followRepo),
		service.NewPostService(userRepo, postRepo),
		service.NewFeedService(userRepo, postRepo, cache, cfg.Feed.ExploreTTL, cfg.Feed.ExploreLimit),
		service.NewChatService(userRepo, msgRepo),
		hub,
	)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.New(cfg, h, tokens),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}
