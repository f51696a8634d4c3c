package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("ASSETS_DIR", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "3000")
	}
	if cfg.AppEnv != "development" {
		t.Fatalf("AppEnv mismatch: got %q", cfg.AppEnv)
	}
	if cfg.DefaultLocale != "pt" {
		t.Fatalf("DefaultLocale mismatch: got %q", cfg.DefaultLocale)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
	if cfg.AssetsDir != "assets" {
		t.Fatalf("AssetsDir mismatch: got %q", cfg.AssetsDir)
	}
	if cfg.RateLimitPerMin != 0 {
		t.Fatalf("RateLimitPerMin mismatch: got %d", cfg.RateLimitPerMin)
	}
	if cfg.HTTPIdleTimeout != 60*time.Second {
		t.Fatalf("HTTPIdleTimeout mismatch: got %s", cfg.HTTPIdleTimeout)
	}
}

func TestLoadConfigHonorsPortOverride(t *testing.T) {
	t.Setenv("PORT", "1919")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "1919" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "1919")
	}
}

func TestLoadConfigRejectsInvalidPort(t *testing.T) {
	for _, port := range []string{"http", "0", "70000"} {
		t.Setenv("PORT", port)
		if _, err := LoadConfig(); err == nil {
			t.Fatalf("expected error for PORT=%q", port)
		}
	}
}

func TestLoadConfigParsesOriginList(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ong.example.org, http://localhost:5173 ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	expected := []string{"https://ong.example.org", "http://localhost:5173"}
	if len(cfg.CORSAllowedOrigins) != len(expected) {
		t.Fatalf("CORSAllowedOrigins mismatch: got %#v want %#v", cfg.CORSAllowedOrigins, expected)
	}
	for i, origin := range expected {
		if cfg.CORSAllowedOrigins[i] != origin {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], origin)
		}
	}
}

func TestLoadConfigRejectsNegativeRateLimit(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-1")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for negative rate limit")
	}
}
