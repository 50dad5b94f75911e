package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort              = "8080"
	defaultDatabaseURL       = "quwa.db"
	defaultNotifyProvider    = ProviderLog
	defaultNotifyFrom        = "Quwa Studio <bookings@quwa.studio>"
	defaultNotifyTimeout     = "10s"
	defaultNotifyMaxAttempts = "5"
	defaultSubmitTimeout     = "15s"
	defaultShutdownTimeout   = "10s"
	defaultCookieSecure      = "false"
	defaultCSRFAuthKey       = "change-me-csrf-key-32-bytes-long"
)

// Notification providers.
const (
	ProviderLog      = "log"
	ProviderResend   = "resend"
	ProviderFunction = "function"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	NotifyProvider    string
	ResendAPIKey      string
	NotifyFrom        string
	NotifyTo          []string
	NotifyFunctionURL string
	NotifyFunctionKey string
	NotifyTimeout     time.Duration
	NotifyMaxAttempts int

	SubmitTimeout   time.Duration
	ShutdownTimeout time.Duration

	CSRFAuthKey        string
	CookieSecure       bool
	CORSAllowedOrigins []string
	AdminToken         string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimPrefix(strings.TrimSpace(getEnv("PORT", defaultPort)), ":")
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))

	cfg.NotifyProvider = strings.ToLower(strings.TrimSpace(getEnv("NOTIFY_PROVIDER", defaultNotifyProvider)))
	cfg.ResendAPIKey = strings.TrimSpace(os.Getenv("RESEND_API_KEY"))
	cfg.NotifyFrom = strings.TrimSpace(getEnv("NOTIFY_FROM", defaultNotifyFrom))
	cfg.NotifyTo = splitList(os.Getenv("NOTIFY_TO"))
	cfg.NotifyFunctionURL = strings.TrimSpace(os.Getenv("NOTIFY_FUNCTION_URL"))
	cfg.NotifyFunctionKey = strings.TrimSpace(os.Getenv("NOTIFY_FUNCTION_KEY"))

	var err error
	cfg.NotifyTimeout, err = parseDurationEnv("NOTIFY_TIMEOUT", defaultNotifyTimeout)
	if err != nil {
		return nil, err
	}
	cfg.NotifyMaxAttempts, err = parseIntEnv("NOTIFY_MAX_ATTEMPTS", defaultNotifyMaxAttempts)
	if err != nil {
		return nil, err
	}
	cfg.SubmitTimeout, err = parseDurationEnv("SUBMIT_TIMEOUT", defaultSubmitTimeout)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return nil, err
	}

	cfg.CSRFAuthKey = getEnv("CSRF_AUTH_KEY", defaultCSRFAuthKey)
	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	cfg.AdminToken = strings.TrimSpace(os.Getenv("ADMIN_TOKEN"))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config: env=%s port=%s notify_provider=%s cookie_secure=%t", cfg.AppEnv, cfg.Port, cfg.NotifyProvider, cfg.CookieSecure)

	return cfg, nil
}

// IsProduction reports whether the app runs in a prod-like environment.
func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.NotifyTimeout <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT must be > 0")
	}
	if cfg.SubmitTimeout <= 0 {
		return fmt.Errorf("SUBMIT_TIMEOUT must be > 0")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if cfg.NotifyMaxAttempts <= 0 {
		return fmt.Errorf("NOTIFY_MAX_ATTEMPTS must be > 0")
	}
	if len(cfg.CSRFAuthKey) != 32 {
		return fmt.Errorf("CSRF_AUTH_KEY must be exactly 32 bytes")
	}

	switch cfg.NotifyProvider {
	case ProviderLog:
	case ProviderResend:
		if cfg.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required when NOTIFY_PROVIDER=resend")
		}
		if len(cfg.NotifyTo) == 0 {
			return fmt.Errorf("NOTIFY_TO is required when NOTIFY_PROVIDER=resend")
		}
	case ProviderFunction:
		if cfg.NotifyFunctionURL == "" {
			return fmt.Errorf("NOTIFY_FUNCTION_URL is required when NOTIFY_PROVIDER=function")
		}
	default:
		return fmt.Errorf("NOTIFY_PROVIDER must be one of: log, resend, function")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.CSRFAuthKey, defaultCSRFAuthKey) {
			return fmt.Errorf("in prod/release CSRF_AUTH_KEY must be set and not default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
		if cfg.NotifyProvider == ProviderLog {
			return fmt.Errorf("in prod/release NOTIFY_PROVIDER must not be log")
		}
		if cfg.AdminToken == "" {
			return fmt.Errorf("in prod/release ADMIN_TOKEN must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
