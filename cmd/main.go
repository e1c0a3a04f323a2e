package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adpilot/internal/adapter/credentials"
	"adpilot/internal/adapter/gemini"
	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/meta"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/db"
)

// main is the entry point of the adpilot service. It loads configuration,
// optionally runs database migrations and seeds the catalogue, wires the
// platform and model clients, then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo catalogue seeded")
	}

	creds := credentials.NewStatic(cfg.Platform.AccessToken, cfg.Model.APIKey)
	platform := meta.NewClient(cfg.Platform, creds, logger)
	model, err := gemini.NewModel(ctx, cfg.Model, creds, logger)
	if err != nil {
		logger.Error("model client error", slog.Any("error", err))
		return
	}

	conversations := postgres.NewConversationRepository(pool)
	store := postgres.NewStoreRepository(pool)
	collector := usecase.NewContextCollector(store, platform, usecase.CollectorOptions{
		ProductLimit:  cfg.Chat.ProductLimit,
		CampaignLimit: cfg.Chat.CampaignLimit,
		Timeout:       cfg.Chat.ContextTimeout,
		CacheTTL:      cfg.Chat.ContextCacheTTL,
	}, logger)
	svc := usecase.NewCampaignUseCase(conversations, model, platform, collector, cfg.Chat.HistoryLimit, logger)

	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.MaxBodyBytes)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
