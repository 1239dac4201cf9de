package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration. It merges file defaults and
// environment overrides to support both local and deployed runs.
type Config struct {
	ServiceID   string
	Environment string

	HTTPPort int
	GRPCPort int

	DatabaseURL string
	RedisURL    string
	MaxDBConns  int32

	AccessTokenSecret     string
	RefreshTokenSecret    string
	ActivationTokenSecret string
	AccessTokenTTL        time.Duration
	RefreshTokenTTL       time.Duration

	BcryptCost  int
	DefaultRole string

	CatalogCacheTTL       time.Duration
	NotificationRetention time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPEmail    string
	SMTPPassword string
	SMTPFrom     string

	CloudinaryURL string

	PaymentBaseURL string
	PaymentAPIKey  string

	KafkaBrokers       []string
	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxRetries   int
	CleanupInterval    time.Duration
}

// IsProduction gates the Secure flag on session cookies.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay
// internal.
type configFile struct {
	Service struct {
		ID          string `yaml:"id"`
		Environment string `yaml:"environment"`
		HTTPPort    int    `yaml:"http_port"`
		GRPCPort    int    `yaml:"grpc_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL   string   `yaml:"postgres_url"`
		RedisURL      string   `yaml:"redis_url"`
		CloudinaryURL string   `yaml:"cloudinary_url"`
		KafkaBrokers  []string `yaml:"kafka_brokers"`
	} `yaml:"dependencies"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`
	Payment struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"payment"`
}

// LoadConfig resolves configuration in priority order: defaults -> file ->
// env. This order keeps local bootstrap simple while allowing
// environment-specific overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:             "lms-backend",
		Environment:           "development",
		HTTPPort:              8080,
		GRPCPort:              9090,
		MaxDBConns:            20,
		AccessTokenTTL:        5 * time.Minute,
		RefreshTokenTTL:       3 * 24 * time.Hour,
		BcryptCost:            12,
		DefaultRole:           "user",
		CatalogCacheTTL:       7 * 24 * time.Hour,
		NotificationRetention: 30 * 24 * time.Hour,
		SMTPPort:              587,
		OutboxPollInterval:    2 * time.Second,
		OutboxBatchSize:       100,
		OutboxMaxRetries:      5,
		CleanupInterval:       time.Hour,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.Environment != "" {
			cfg.Environment = f.Service.Environment
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if f.Dependencies.CloudinaryURL != "" {
			cfg.CloudinaryURL = f.Dependencies.CloudinaryURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = f.Dependencies.KafkaBrokers
		}
		if f.SMTP.Host != "" {
			cfg.SMTPHost = f.SMTP.Host
		}
		if f.SMTP.Port > 0 {
			cfg.SMTPPort = f.SMTP.Port
		}
		if f.SMTP.Email != "" {
			cfg.SMTPEmail = f.SMTP.Email
		}
		if f.SMTP.Password != "" {
			cfg.SMTPPassword = f.SMTP.Password
		}
		if f.SMTP.From != "" {
			cfg.SMTPFrom = f.SMTP.From
		}
		if f.Payment.BaseURL != "" {
			cfg.PaymentBaseURL = f.Payment.BaseURL
		}
		if f.Payment.APIKey != "" {
			cfg.PaymentAPIKey = f.Payment.APIKey
		}
	}

	cfg.Environment = envOrDefault("APP_ENV", cfg.Environment)
	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.CloudinaryURL = envOrDefault("CLOUDINARY_URL", cfg.CloudinaryURL)
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)

	cfg.AccessTokenSecret = envOrDefault("ACCESS_TOKEN_SECRET", cfg.AccessTokenSecret)
	cfg.RefreshTokenSecret = envOrDefault("REFRESH_TOKEN_SECRET", cfg.RefreshTokenSecret)
	cfg.ActivationTokenSecret = envOrDefault("ACTIVATION_TOKEN_SECRET", cfg.ActivationTokenSecret)

	cfg.SMTPHost = envOrDefault("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = envInt("SMTP_PORT", cfg.SMTPPort)
	cfg.SMTPEmail = envOrDefault("SMTP_EMAIL", cfg.SMTPEmail)
	cfg.SMTPPassword = envOrDefault("SMTP_PASSWORD", cfg.SMTPPassword)
	cfg.SMTPFrom = envOrDefault("SMTP_FROM", cfg.SMTPFrom)

	cfg.PaymentBaseURL = envOrDefault("PAYMENT_BASE_URL", cfg.PaymentBaseURL)
	cfg.PaymentAPIKey = envOrDefault("PAYMENT_API_KEY", cfg.PaymentAPIKey)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)
	cfg.BcryptCost = envInt("BCRYPT_ROUNDS", cfg.BcryptCost)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))

	cfg.AccessTokenTTL = time.Duration(envInt("ACCESS_TOKEN_EXPIRE_MINUTES", int(cfg.AccessTokenTTL.Minutes()))) * time.Minute
	cfg.RefreshTokenTTL = time.Duration(envInt("REFRESH_TOKEN_EXPIRE_DAYS", int(cfg.RefreshTokenTTL.Hours()/24))) * 24 * time.Hour
	cfg.CatalogCacheTTL = time.Duration(envInt("CATALOG_CACHE_TTL_DAYS", int(cfg.CatalogCacheTTL.Hours()/24))) * 24 * time.Hour
	cfg.NotificationRetention = time.Duration(envInt("NOTIFICATION_RETENTION_DAYS", int(cfg.NotificationRetention.Hours()/24))) * 24 * time.Hour
	cfg.OutboxPollInterval = time.Duration(envInt("OUTBOX_POLL_SECONDS", int(cfg.OutboxPollInterval.Seconds()))) * time.Second
	cfg.OutboxBatchSize = envInt("OUTBOX_BATCH_SIZE", cfg.OutboxBatchSize)
	cfg.OutboxMaxRetries = envInt("OUTBOX_MAX_RETRIES", cfg.OutboxMaxRetries)
	cfg.CleanupInterval = time.Duration(envInt("CLEANUP_INTERVAL_MINUTES", int(cfg.CleanupInterval.Minutes()))) * time.Minute

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" || cfg.ActivationTokenSecret == "" {
		return Config{}, fmt.Errorf("missing ACCESS_TOKEN_SECRET, REFRESH_TOKEN_SECRET or ACTIVATION_TOKEN_SECRET")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// envCSV parses comma-separated env vars and removes empty segments.
func envCSV(name string, fallback []string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	parts := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	if len(parts) == 0 {
		return fallback
	}
	return parts
}
