package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-portal/internal/database"
	"github.com/justsurfingit/job-portal/internal/handlers"
	"github.com/justsurfingit/job-portal/internal/services"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	// 1. Configuration & logging
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Database Connection
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	// 3. LLM client (optional)
	var llmService *services.LLMService
	if cfg.AIEnabled() {
		llmService, err = services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTemperature)
		if err != nil {
			return err
		}
		slog.Info("AI flows enabled", slog.String("model", cfg.GeminiModel))
	} else {
		slog.Warn("GEMINI_API_KEY is not set; AI routes will answer 503")
	}

	// 4. Router
	router := handlers.NewRouter(handlers.RouterConfig{
		DB:             db,
		LLMService:     llmService,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
