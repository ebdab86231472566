// Package config loads all runtime configuration from environment variables.
// A .env file, when present, is loaded into the environment by the CLI before
// Load runs; no config files are read here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all runtime configuration for KYSAI.
type Config struct {
	HTTP    HTTPConfig
	DB      DBConfig
	Log     LogConfig
	JWT     JWTConfig
	AI      AIConfig
	Storage StorageConfig
	App     AppConfig
	OTel    OTelConfig
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int
}

// DBConfig holds database connection configuration.
type DBConfig struct {
	Driver   string // "sqlite" (default) or "postgres"
	DSN      string // required when Driver == "postgres"
	File     string // SQLite database file path (default: "kysai.db")
	MaxConns int    // Postgres only
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level  string
	Format string
}

// JWTConfig holds JSON Web Token signing and expiry settings.
type JWTConfig struct {
	Secret    string //nolint:gosec // intentional: holds JWT signing secret loaded from env
	AccessTTL time.Duration
}

// AIConfig holds generative-model settings. An empty APIKey puts the service
// in mock mode; that is a supported state, not a configuration error.
type AIConfig struct {
	APIKey      string //nolint:gosec // intentional: holds Gemini API key loaded from env
	TextModel   string
	VisionModel string
	// Timeout bounds every outbound model call.
	Timeout time.Duration
}

// Enabled reports whether a model credential is configured.
func (c AIConfig) Enabled() bool { return c.APIKey != "" }

// StorageConfig holds local file storage settings.
type StorageConfig struct {
	StaticDir      string
	MaxUploadBytes int64
}

// UploadDir is the directory uploaded images are written to.
func (c StorageConfig) UploadDir() string {
	return filepath.Join(c.StaticDir, "uploads")
}

// AppConfig holds application-level settings such as seed data.
type AppConfig struct {
	SeedOrgName       string
	SeedAdminEmail    string
	SeedAdminPassword string
}

// OTelConfig holds OpenTelemetry exporter settings.
type OTelConfig struct {
	OTLPEndpoint string
}

// Load reads configuration from environment variables, applies defaults,
// and returns an error if any required field is absent or malformed.
func Load() (*Config, error) {
	cfg := &Config{}
	var err error

	// HTTP
	cfg.HTTP.Port = envInt("HTTP_PORT", 8000)

	// DB
	cfg.DB.Driver = envStr("DB_DRIVER", "sqlite")
	cfg.DB.File = envStr("DB_FILE", "kysai.db")
	cfg.DB.DSN = os.Getenv("DB_DSN")
	switch cfg.DB.Driver {
	case "sqlite":
	case "postgres":
		if cfg.DB.DSN == "" {
			return nil, errors.New("DB_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("DB_DRIVER %q is not supported (use sqlite or postgres)", cfg.DB.Driver)
	}
	cfg.DB.MaxConns = envInt("DB_MAX_CONNS", 25)

	// Log
	cfg.Log.Level = envStr("LOG_LEVEL", "info")
	cfg.Log.Format = envStr("LOG_FORMAT", "json")

	// JWT
	cfg.JWT.Secret = envStr("JWT_SECRET", "kysai-dev-secret")
	cfg.JWT.AccessTTL, err = envDuration("JWT_ACCESS_TTL", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("JWT_ACCESS_TTL: %w", err)
	}

	// AI
	cfg.AI.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.TextModel = envStr("AI_TEXT_MODEL", "gemini-pro")
	cfg.AI.VisionModel = envStr("AI_VISION_MODEL", "gemini-1.5-flash")
	cfg.AI.Timeout, err = envDuration("AI_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("AI_TIMEOUT: %w", err)
	}
	if cfg.AI.Timeout <= 0 {
		return nil, fmt.Errorf("AI_TIMEOUT must be positive, got %s", cfg.AI.Timeout)
	}

	// Storage
	cfg.Storage.StaticDir = envStr("STATIC_DIR", "static")
	cfg.Storage.MaxUploadBytes = int64(envInt("UPLOAD_MAX_BYTES", 32<<20))

	// App
	cfg.App.SeedOrgName = envStr("SEED_ORG_NAME", "KYSAI")
	cfg.App.SeedAdminEmail = envStr("SEED_ADMIN_EMAIL", "admin@kysai.com")
	cfg.App.SeedAdminPassword = os.Getenv("SEED_ADMIN_PASSWORD")

	// OTel
	cfg.OTel.OTLPEndpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")

	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", v, err)
	}
	return d, nil
}
