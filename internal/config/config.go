package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Marketplace MarketplaceConfig
	Session     SessionConfig
	Redis       RedisConfig
	Database    DatabaseConfig
}

type AppConfig struct {
	AppName          string
	Environment      string
	HTTPPort         string
	CORSAllowOrigins []string
}

type MarketplaceConfig struct {
	BaseURL string
	Timeout time.Duration
}

const (
	SessionBackendMemory   = "memory"
	SessionBackendRedis    = "redis"
	SessionBackendPostgres = "postgres"
)

type SessionConfig struct {
	Secret       string
	Backend      string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

const minSessionSecretLen = 32

func Load() (Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom reads configuration from v. Environment variables are bound
// automatically; callers may also set values directly.
func LoadFrom(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{}

	var missing, invalid []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}
	dur := func(key string) time.Duration {
		d, err := parseDuration(opt(key))
		if err != nil {
			invalid = append(invalid, key)
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:          req("APP_NAME"),
		Environment:      req("APP_ENV"),
		HTTPPort:         req("HTTP_PORT"),
		CORSAllowOrigins: splitList(opt("CORS_ALLOW_ORIGINS")),
	}

	cfg.Marketplace = MarketplaceConfig{
		BaseURL: strings.TrimRight(opt("MARKETPLACE_API_URL"), "/"),
		Timeout: dur("MARKETPLACE_TIMEOUT"),
	}

	cfg.Session = SessionConfig{
		Secret:       req("SESSION_SECRET"),
		Backend:      strings.ToLower(opt("SESSION_BACKEND")),
		TTL:          dur("SESSION_TTL"),
		CookieName:   opt("SESSION_COOKIE_NAME"),
		CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
	}
	if cfg.Session.Secret != "" && len(cfg.Session.Secret) < minSessionSecretLen {
		invalid = append(invalid, "SESSION_SECRET")
	}
	switch cfg.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis, SessionBackendPostgres:
	default:
		invalid = append(invalid, "SESSION_BACKEND")
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		TTL:      dur("REDIS_TTL"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        dur("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:          v.GetInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          v.GetInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   dur("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime:   dur("DB_POOL_MAX_CONN_IDLE_TIME"),
		PoolHealthCheckPeriod: dur("DB_POOL_HEALTH_CHECK_PERIOD"),
	}
	if cfg.Session.Backend == SessionBackendPostgres {
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER"} {
			req(key)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// LoadMarketplace reads only the marketplace settings, for tools that talk to
// the backend without running the gateway.
func LoadMarketplace(v *viper.Viper) (MarketplaceConfig, error) {
	v.AutomaticEnv()
	setDefaults(v)

	timeout, err := parseDuration(strings.TrimSpace(v.GetString("MARKETPLACE_TIMEOUT")))
	if err != nil {
		return MarketplaceConfig{}, fmt.Errorf("%w: MARKETPLACE_TIMEOUT", errInvalidEnv)
	}
	return MarketplaceConfig{
		BaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("MARKETPLACE_API_URL")), "/"),
		Timeout: timeout,
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("MARKETPLACE_API_URL", "http://localhost:8080")
	v.SetDefault("MARKETPLACE_TIMEOUT", "15s")
	v.SetDefault("SESSION_BACKEND", SessionBackendMemory)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE_NAME", "kw_session")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", "600")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
}

// parseDuration accepts Go durations ("15s") as well as bare seconds ("600").
func parseDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		if d < 0 {
			return 0, fmt.Errorf("negative duration %q", raw)
		}
		return d, nil
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}
	return time.Duration(secs) * time.Second, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
