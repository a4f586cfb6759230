package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors for token validation; verification fails closed.
var (
	// ErrInvalidToken is returned when a token's signature does not verify
	// or validation fails for any reason not covered by the other sentinels.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned when a token is structurally invalid.
	ErrTokenMalformed = errors.New("malformed token")
)

// SessionClaims holds the JWT claims for a session token: user id (sub),
// email, and role label, plus issued-at and expiry.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"perfil"`
}

// TokenProvider issues and validates HS256 session tokens signed with a
// process-wide secret loaded once at startup.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenProvider returns a TokenProvider signing with secret. ttl is the
// session token lifetime applied to every issued token.
func NewTokenProvider(secret []byte, ttl time.Duration) *TokenProvider {
	return &TokenProvider{secret: secret, ttl: ttl}
}

// TTL returns the configured session token lifetime.
func (p *TokenProvider) TTL() time.Duration {
	return p.ttl
}

// Issue creates a signed session token carrying the user id, email, and role.
// Returns the token string and its expiration time.
func (p *TokenProvider) Issue(userID, email, role string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(p.ttl)
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
		Role:  role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Validate parses and verifies the token. Returns the claims on success, or
// ErrTokenExpired, ErrTokenMalformed, or ErrInvalidToken on failure. There is
// no partial-trust mode: any failure rejects the token.
func (p *TokenProvider) Validate(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrInvalidToken
		}
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
