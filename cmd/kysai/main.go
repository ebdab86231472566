// Command kysai runs the KYSAI quality-management backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/d9705996/kysai/internal/config"
	"github.com/d9705996/kysai/internal/db"
	"github.com/d9705996/kysai/internal/observability"
	"github.com/d9705996/kysai/internal/seed"
	"github.com/d9705996/kysai/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded before reading configuration")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:           "kysai",
	Short:         "KYSAI quality-management backend",
	Long:          `KYSAI generates 8D problem-solving reports and analyzes workplace safety images.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := observability.NewLogger(os.Stdout, cfg.Log.Level, cfg.Log.Format)

		h, err := db.New(cmd.Context(), &cfg.DB)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer h.Close()
		log.Info("database schema up to date", "driver", cfg.DB.Driver)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default organization and admin user if no users exist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := observability.NewLogger(os.Stdout, cfg.Log.Level, cfg.Log.Format)

		h, err := db.New(cmd.Context(), &cfg.DB)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer h.Close()
		return seedAdmin(cmd.Context(), h, cfg, log)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kysai %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

// loadConfig loads the env file, when present, then reads configuration.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func seedAdmin(ctx context.Context, h *db.Handle, cfg *config.Config, log *slog.Logger) error {
	if err := seed.EnsureAdmin(ctx, h.DB, seed.AdminOptions{
		OrgName:  cfg.App.SeedOrgName,
		Email:    cfg.App.SeedAdminEmail,
		Password: cfg.App.SeedAdminPassword,
	}, log); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
