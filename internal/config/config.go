package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/nqkhanh/commune-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectRetry      pkgRetry.RetryConfig `envPrefix:"DB_CONNECT_RETRY_"`

	// Generation service configuration. SERVICE_URL may be left empty:
	// the ask endpoint then answers with a configuration error instead
	// of calling anything.
	LLMConnectorCfg LLMConnectorConfig `envPrefix:"LLM_"`

	// Upload configuration
	UploadCfg UploadConfig `envPrefix:"UPLOAD_"`

	// Rate limiting for the ask endpoint
	AskRateLimitPerMinute int `env:"ASK_RATE_LIMIT_PER_MINUTE" envDefault:"20"`
	AskRateLimitBurst     int `env:"ASK_RATE_LIMIT_BURST" envDefault:"5"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	GenerateEndpoint string `env:"GENERATE_ENDPOINT" envDefault:"/api/generate"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"120s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"120s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// UploadConfig holds upload directory and size limits
type UploadConfig struct {
	Dir           string `env:"DIR" envDefault:"uploads"`
	BaseURL       string `env:"BASE_URL" envDefault:"/uploads"`
	MaxUploadSize int64  `env:"MAX_UPLOAD_SIZE" envDefault:"33554432"` // 32 MiB multipart memory
	MaxImageSize  int64  `env:"MAX_IMAGE_SIZE" envDefault:"5242880"`   // 5 MiB
	MaxDocSize    int64  `env:"MAX_DOC_SIZE" envDefault:"10485760"`    // 10 MiB
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if cfg.AskRateLimitPerMinute < 1 || cfg.AskRateLimitPerMinute > 600 {
		errors = append(errors, fmt.Sprintf("ASK_RATE_LIMIT_PER_MINUTE must be between 1 and 600, got %d", cfg.AskRateLimitPerMinute))
	}

	if cfg.AskRateLimitBurst < 1 || cfg.AskRateLimitBurst > 100 {
		errors = append(errors, fmt.Sprintf("ASK_RATE_LIMIT_BURST must be between 1 and 100, got %d", cfg.AskRateLimitBurst))
	}

	if cfg.UploadCfg.Dir == "" {
		errors = append(errors, "UPLOAD_DIR must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
