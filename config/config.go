package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Database    DatabaseConfig
	OIDC        OIDCConfig
	Session     SessionConfig
	Logger      LoggerConfig
}

type HTTPConfig struct {
	Port           string
	RequestTimeout time.Duration
	UseHTTPS       bool
}

type DatabaseConfig struct {
	Path string
}

type OIDCConfig struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

type SessionConfig struct {
	CookieName string
	Lifetime   int
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies defaults so the service can boot in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     "buyer-intake",
		Environment: getEnv("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: getDuration("HTTP_REQUEST_TIMEOUT", 60*time.Second),
			UseHTTPS:       getBool("USE_HTTPS", false),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "buyer_intake.db"),
		},
		OIDC: OIDCConfig{
			IssuerURL:    os.Getenv("OIDC_ISSUER_URL"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			CallbackURL:  getEnv("OIDC_CALLBACK_URL", "http://localhost:8080/callback"),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "buyer_intake_session"),
			Lifetime:   getInt("SESSION_LIFETIME_SECONDS", 3600),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "json"),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
