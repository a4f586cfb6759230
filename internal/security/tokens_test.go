package security

import (
	"testing"
	"time"
)

func newTestTokenProvider(ttl time.Duration) *TokenProvider {
	return NewTokenProvider([]byte("test-secret"), ttl)
}

func TestTokenProvider_IssueAndValidate(t *testing.T) {
	p := newTestTokenProvider(time.Hour)

	token, expiresAt, err := p.Issue("u1", "a@x.com", "USER")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned empty token")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatal("expires at in the past")
	}

	claims, err := p.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "u1" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "u1")
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "a@x.com")
	}
	if claims.Role != "USER" {
		t.Errorf("Role = %q, want %q", claims.Role, "USER")
	}
}

func TestTokenProvider_ValidateExpired(t *testing.T) {
	p := newTestTokenProvider(-1 * time.Second)

	token, _, err := p.Issue("u1", "a@x.com", "USER")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	_, err = p.Validate(token)
	if err != ErrTokenExpired {
		t.Errorf("Validate expired token: want ErrTokenExpired, got %v", err)
	}
}

func TestTokenProvider_ValidateWrongSecret(t *testing.T) {
	p := newTestTokenProvider(time.Hour)
	token, _, err := p.Issue("u1", "a@x.com", "USER")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewTokenProvider([]byte("other-secret"), time.Hour)
	_, err = other.Validate(token)
	if err != ErrInvalidToken {
		t.Errorf("Validate with wrong secret: want ErrInvalidToken, got %v", err)
	}
}

func TestTokenProvider_ValidateMalformed(t *testing.T) {
	p := newTestTokenProvider(time.Hour)
	_, err := p.Validate("not-a-jwt")
	if err != ErrTokenMalformed {
		t.Errorf("Validate malformed token: want ErrTokenMalformed, got %v", err)
	}
}

func TestTokenProvider_ValidateTampered(t *testing.T) {
	p := newTestTokenProvider(time.Hour)
	token, _, err := p.Issue("u1", "a@x.com", "USER")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := p.Validate(tampered); err == nil {
		t.Fatal("Validate tampered token should fail")
	}
}

func TestTokenProvider_TTL(t *testing.T) {
	p := newTestTokenProvider(2 * time.Hour)
	if p.TTL() != 2*time.Hour {
		t.Errorf("TTL = %v, want 2h", p.TTL())
	}
}
