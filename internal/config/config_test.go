package config

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_ADDR", "postgres://localhost:5432/contacts")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load err: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("expected 15m TTL, got %v", cfg.AccessTokenTTL)
	}
	if cfg.BcryptCost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", cfg.BcryptCost)
	}
	if cfg.JWTIssuer != "contact-book" {
		t.Fatalf("expected default issuer, got %q", cfg.JWTIssuer)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_ADDR", "postgres://localhost/db")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DB_ADDR", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing DB_ADDR")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ACCESS_TOKEN_TTL", "1h")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load err: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.AccessTokenTTL != time.Hour || cfg.BcryptCost != 12 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)

	t.Setenv("ACCESS_TOKEN_TTL", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bad TTL")
	}
	t.Setenv("ACCESS_TOKEN_TTL", "-5m")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive TTL")
	}
	t.Setenv("ACCESS_TOKEN_TTL", "15m")

	t.Setenv("BCRYPT_COST", "99")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for out-of-range cost")
	}
	t.Setenv("BCRYPT_COST", "abc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric cost")
	}
}
