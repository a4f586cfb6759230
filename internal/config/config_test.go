package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.AuthTokenTTL != "24h" {
		t.Errorf("AuthTokenTTL = %q, want %q", cfg.AuthTokenTTL, "24h")
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.BcryptCost)
	}
	if cfg.DBQueryTimeout != "5s" {
		t.Errorf("DBQueryTimeout = %q, want %q", cfg.DBQueryTimeout, "5s")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load without JWT_SECRET should return error")
	}
}

func TestLoad_EnvVarOverride(t *testing.T) {
	os.Clearenv()
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("AUTH_TOKEN_TTL", "2h")
	os.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9090")
	}
	if cfg.AuthTokenTTL != "2h" {
		t.Errorf("AuthTokenTTL = %q, want %q", cfg.AuthTokenTTL, "2h")
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.BcryptCost)
	}
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	os.Clearenv()
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("BCRYPT_COST", "99")

	if _, err := Load(); err == nil {
		t.Fatal("Load with BCRYPT_COST=99 should return error")
	}
}

func TestTokenTTL(t *testing.T) {
	cfg := &Config{AuthTokenTTL: "2h"}
	if got := cfg.TokenTTL(); got != 2*time.Hour {
		t.Errorf("TokenTTL = %v, want 2h", got)
	}

	cfg = &Config{AuthTokenTTL: "garbage"}
	if got := cfg.TokenTTL(); got != 24*time.Hour {
		t.Errorf("TokenTTL with invalid value = %v, want 24h fallback", got)
	}

	cfg = &Config{AuthTokenTTL: "-1h"}
	if got := cfg.TokenTTL(); got != 24*time.Hour {
		t.Errorf("TokenTTL with negative value = %v, want 24h fallback", got)
	}
}

func TestQueryTimeout(t *testing.T) {
	cfg := &Config{DBQueryTimeout: "250ms"}
	if got := cfg.QueryTimeout(); got != 250*time.Millisecond {
		t.Errorf("QueryTimeout = %v, want 250ms", got)
	}

	cfg = &Config{}
	if got := cfg.QueryTimeout(); got != 5*time.Second {
		t.Errorf("QueryTimeout unset = %v, want 5s fallback", got)
	}
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://a.example, http://b.example ,"}
	got := cfg.CORSOrigins()
	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Errorf("CORSOrigins = %v", got)
	}

	cfg = &Config{}
	if got := cfg.CORSOrigins(); got != nil {
		t.Errorf("CORSOrigins empty = %v, want nil", got)
	}
}
