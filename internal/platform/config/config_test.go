package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:               ":8080",
		DatabaseURL:        "postgres://localhost/hrpay",
		Environment:        "development",
		AccessTokenTTL:     15 * time.Minute,
		MaxBodyBytes:       1048576,
		RateLimitPerSecond: 20,
		RateLimitBurst:     40,
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg := validConfig()
	cfg.DatabaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing database url should fail")
	}

	cfg = validConfig()
	cfg.MaxBodyBytes = 100
	if err := cfg.Validate(); err == nil {
		t.Fatal("tiny body limit should fail")
	}

	cfg = validConfig()
	cfg.RateLimitBurst = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero burst should fail")
	}
}

func TestValidateProduction(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = "production"
	if err := cfg.Validate(); err == nil {
		t.Fatal("production without jwt secret should fail")
	}

	cfg.JWTSecret = "secret"
	cfg.RunSeed = true
	if err := cfg.Validate(); err == nil {
		t.Fatal("production seed without password should fail")
	}

	cfg.RunSeed = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid production config: %v", err)
	}
}
