package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/kachra-seth/engagement-system/internal/api"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
	"github.com/kachra-seth/engagement-system/internal/core/service"
	"github.com/kachra-seth/engagement-system/internal/core/session"
	"github.com/kachra-seth/engagement-system/internal/infrastructure/config"
	mongodb "github.com/kachra-seth/engagement-system/internal/infrastructure/db/mongo"
	redisdb "github.com/kachra-seth/engagement-system/internal/infrastructure/db/redis"
	"github.com/kachra-seth/engagement-system/internal/infrastructure/mockbackend"
	"github.com/kachra-seth/engagement-system/internal/infrastructure/queue"
	"github.com/kachra-seth/engagement-system/internal/infrastructure/storage"
	"github.com/kachra-seth/engagement-system/pkg/logger"
)

// @title        Kachra Seth Engagement API
// @version      1.0
// @description  Citizen engagement, fleet tracking and city analytics for municipal waste management.
// @host         localhost:8080
// @BasePath     /
func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(cfg.LogLevel, cfg.Env == "development", nil)

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("JWT_SECRET must be set outside development")
		}
		cfg.JWTSecret = "dev-secret"
		log.Warn().Msg("JWT_SECRET not set, using development default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	authRepo := mongodb.NewAuthRepository(db)
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if cfg.Env == "development" {
		if err := mongodb.SeedDemoAccounts(ctx, authRepo); err != nil {
			log.Warn().Err(err).Msg("demo account seeding failed")
		}
	}

	var sessionRepo ports.SessionRepository
	switch cfg.Session.Backend {
	case "redis":
		sessionRepo = redisdb.NewSessionRepository(rdb)
	default:
		sessionRepo = storage.NewSessionFile(cfg.Session.FilePath)
	}
	sessions := session.NewStore(sessionRepo, logger.For("session"))
	sessions.Restore(ctx)

	backendOpts := []mockbackend.Option{mockbackend.WithLatencyScale(cfg.Mock.LatencyScale)}
	if cfg.Mock.Seed != 0 {
		backendOpts = append(backendOpts, mockbackend.WithSeed(cfg.Mock.Seed))
	}
	backend := mockbackend.New(backendOpts...)

	fleet := service.NewFleetService(logger.For("fleet"))

	dispatcher := queue.NewDispatcher(cfg.Fleet.ReportWorkers, fleet, logger.For("dispatch"))
	dispatcher.Start(ctx)

	go func() {
		tick := time.Duration(cfg.Fleet.VehicleTickMS) * time.Millisecond
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fleet.MoveVehicle()
			}
		}
	}()

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)
	citizenService := service.NewCitizenService(backend, sessions, redisdb.NewScanGuard(rdb), dispatcher, logger.For("citizen"))
	adminService := service.NewAdminService(backend)

	e := api.NewRouter(api.Deps{
		JWTSecret: cfg.JWTSecret,
		Sessions:  sessions,
		Auth:      authService,
		Citizen:   citizenService,
		Fleet:     fleet,
		Admin:     adminService,
		Reports:   dispatcher,
		Mongo:     db,
		Redis:     rdb,
		Log:       logger.For("http"),
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("engagement service started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
