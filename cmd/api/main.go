package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hrive/portal-backend/internal/api"
	"github.com/hrive/portal-backend/internal/core/ports"
	"github.com/hrive/portal-backend/internal/core/service"
	"github.com/hrive/portal-backend/internal/infrastructure/config"
	"github.com/hrive/portal-backend/internal/infrastructure/db/postgres"
	"github.com/hrive/portal-backend/internal/infrastructure/db/supabase"
	"github.com/hrive/portal-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Select the credential store backend exactly once; everything past
	// this point works against the interface.
	var repo ports.UserRepository
	if cfg.Supabase.Enabled() {
		repo = supabase.NewUserRepository(supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey))
		log.Info().Str("backend", "supabase").Msg("credential store selected")
	} else {
		pool, err := postgres.Connect(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		repo = postgres.NewUserRepository(pool)
		log.Info().Str("backend", "postgres").Msg("credential store selected")
	}

	// Bootstrap must finish before the listener starts; any failure here
	// terminates the process with a non-zero status.
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}
	if err := service.EnsureSeedUsers(ctx, repo, log); err != nil {
		log.Fatal().Err(err).Msg("seed users failed")
	}

	e := api.NewRouter(repo, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api server starting")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
		log.Info().Msg("api server stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}
}
