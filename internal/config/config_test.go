package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TASKLANE_AUTH_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.AccessTTL != 15*time.Minute {
		t.Fatalf("expected default TTL, got %v", cfg.AccessTTL)
	}
	if cfg.RateBurst != 20 || cfg.RatePerSec != 10 {
		t.Fatalf("unexpected rate defaults: %d %d", cfg.RateBurst, cfg.RatePerSec)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("TASKLANE_AUTH_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error without auth secret")
	}
	if !strings.Contains(err.Error(), "TASKLANE_AUTH_SECRET") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TASKLANE_AUTH_SECRET", "s")
	t.Setenv("TASKLANE_ADDR", ":9000")
	t.Setenv("TASKLANE_ACCESS_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.AccessTTL != 30*time.Minute {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("TASKLANE_AUTH_SECRET", "s")
	t.Setenv("TASKLANE_RATE_BURST", "not-an-int")

	_, err := Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
