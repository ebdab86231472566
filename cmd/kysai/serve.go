package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/d9705996/kysai/internal/ai"
	"github.com/d9705996/kysai/internal/api"
	"github.com/d9705996/kysai/internal/api/handler"
	"github.com/d9705996/kysai/internal/db"
	"github.com/d9705996/kysai/internal/health"
	"github.com/d9705996/kysai/internal/observability"
	"github.com/d9705996/kysai/internal/repository"
	"github.com/d9705996/kysai/internal/service"
	"github.com/d9705996/kysai/internal/storage"
	"github.com/d9705996/kysai/internal/version"
	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// --- Observability -------------------------------------------------------
	obs, log, err := observability.New(ctx, &observability.Config{
		ServiceName:    observability.ServiceName,
		ServiceVersion: version.Version,
		LogLevel:       cfg.Log.Level,
		LogFormat:      cfg.Log.Format,
		OTLPEndpoint:   cfg.OTel.OTLPEndpoint,
	})
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}
	defer obs.Shutdown(context.Background())
	slog.SetDefault(log)
	log.Info("starting kysai", "version", version.Version, "commit", version.Commit, "db_driver", cfg.DB.Driver)

	// --- Database ------------------------------------------------------------
	h, err := db.New(ctx, &cfg.DB)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer h.Close()
	log.Info("database ready", "driver", cfg.DB.Driver)

	if err := seedAdmin(ctx, h, cfg, log); err != nil {
		return err
	}

	// --- AI client and storage -----------------------------------------------
	client, err := ai.FromConfig(ctx, &cfg.AI)
	if err != nil {
		return fmt.Errorf("init ai client: %w", err)
	}
	if client.Mode() == ai.ModeMock {
		log.Warn("GEMINI_API_KEY not set; serving mock AI responses")
	}

	store := storage.NewLocal(cfg.Storage.UploadDir())
	if err := store.EnsureDir(); err != nil {
		return fmt.Errorf("prepare upload dir: %w", err)
	}

	// --- Services and handlers -----------------------------------------------
	reports := repository.NewQualityReportRepository(h.DB)
	hseReports := repository.NewHSEReportRepository(h.DB)
	users := repository.NewUserRepository(h.DB)

	router := api.NewRouter(api.Deps{
		Logger: log,
		Health: health.New(db.NewPinger(h.DB)),
		AI: handler.NewAIHandler(
			service.NewEightDService(client, reports, log),
			service.NewHSEService(client, store, log),
			cfg.Storage.MaxUploadBytes,
			log,
		),
		Reports:   handler.NewReportHandler(service.NewReportService(reports, hseReports), log),
		Auth:      handler.NewAuthHandler(service.NewAuthService(users, cfg.JWT.Secret, cfg.JWT.AccessTTL, log), log),
		JWTSecret: cfg.JWT.Secret,
		StaticDir: cfg.Storage.StaticDir,
	})

	// Model calls may run for the whole AI timeout; writes must outlast them.
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// --- Start server --------------------------------------------------------
	log.Info("http server listening", "addr", srv.Addr, "ai_mode", client.Mode())
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info("server stopped cleanly")
	return nil
}
