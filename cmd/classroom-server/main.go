package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/studystack/classroom/internal/api"
	"github.com/studystack/classroom/internal/core/service"
	"github.com/studystack/classroom/internal/infrastructure/config"
	"github.com/studystack/classroom/internal/infrastructure/db/mongo"
	"github.com/studystack/classroom/internal/infrastructure/db/redis"
	"github.com/studystack/classroom/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// --- Infrastructure ---
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mongoClient, db, err := mongo.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redis.Connect(connectCtx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories and services ---
	userRepo := mongo.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(connectCtx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}
	courseRepo := mongo.NewCourseRepository(db)
	revoker := redis.NewRevocationList(rdb)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userSvc := service.NewUserService(userRepo, revoker, cfg.AccessTokenTTL)
	courseSvc := service.NewCourseService(courseRepo, userRepo)

	e := api.NewRouter(api.Dependencies{
		Auth:      authSvc,
		Users:     userSvc,
		Courses:   courseSvc,
		Revoker:   revoker,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
		Mongo:     db,
		Redis:     rdb,
	})

	// --- Serve until signalled ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
