package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func baseViper() *viper.Viper {
	v := viper.New()
	v.Set("APP_NAME", "kaamwala")
	v.Set("APP_ENV", "test")
	v.Set("HTTP_PORT", "3000")
	v.Set("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	return v
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(baseViper())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Marketplace.BaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected base url %q", cfg.Marketplace.BaseURL)
	}
	if cfg.Marketplace.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Marketplace.Timeout)
	}
	if cfg.Session.Backend != SessionBackendMemory || cfg.Session.CookieName != "kw_session" {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
	if cfg.Redis.TTL != 600*time.Second {
		t.Fatalf("expected bare seconds to parse, got %v", cfg.Redis.TTL)
	}
}

func TestLoadFrom_MissingRequired(t *testing.T) {
	v := viper.New()
	v.Set("APP_NAME", "kaamwala")
	_, err := LoadFrom(v)
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	v := baseViper()
	v.Set("SESSION_SECRET", "short")
	v.Set("SESSION_BACKEND", "etcd")
	_, err := LoadFrom(v)
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
}

func TestLoadFrom_PostgresRequiresDB(t *testing.T) {
	v := baseViper()
	v.Set("SESSION_BACKEND", "postgres")
	_, err := LoadFrom(v)
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" http://a.test , ,http://b.test")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected list %v", got)
	}
}

func TestLoadMarketplace_NoGatewayKeysNeeded(t *testing.T) {
	v := viper.New()
	v.Set("MARKETPLACE_API_URL", "http://api.example.com/")
	v.Set("MARKETPLACE_TIMEOUT", "30")

	cfg, err := LoadMarketplace(v)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.BaseURL != "http://api.example.com" || cfg.Timeout != 30*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}

	v.Set("MARKETPLACE_TIMEOUT", "soon")
	if _, err := LoadMarketplace(v); !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
}
