package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"orgconnect/backend/internal/security"
	"orgconnect/backend/internal/user/domain"
	"orgconnect/backend/internal/user/repository"
)

// Sentinel errors for the auth service; the handler maps them to HTTP statuses.
var (
	ErrMissingFields          = errors.New("required user fields are missing")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

// RegisterParams holds the fields required to create a user account. All are
// required; Password is the plaintext secret and must not be stored or logged.
type RegisterParams struct {
	Name             string
	Email            string
	Password         string
	Phone            string
	Address          string
	Role             string
	OrganizationName string
}

// AuthResult holds the outcome of Register or Login: the account (transient
// copy of the store row) plus the issued session token and its expiry.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService composes the user repository, credential hasher, and token
// provider into the register/login/profile flow. It holds no cross-request
// state; all durable state lives in the repository.
type AuthService struct {
	users        repository.Repository
	hasher       *security.Hasher
	tokens       *security.TokenProvider
	queryTimeout time.Duration
}

// NewAuthService returns an AuthService with the given dependencies.
// queryTimeout bounds individual store calls; zero disables the bound.
func NewAuthService(users repository.Repository, hasher *security.Hasher, tokens *security.TokenProvider, queryTimeout time.Duration) *AuthService {
	return &AuthService{
		users:        users,
		hasher:       hasher,
		tokens:       tokens,
		queryTimeout: queryTimeout,
	}
}

// Register creates a user account with the given fields and issues a session
// token for it. Fails with ErrMissingFields when a required field is empty and
// ErrEmailAlreadyRegistered when the email is taken. Email is matched exactly,
// case-sensitive as stored.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*AuthResult, error) {
	if p.Name == "" || p.Email == "" || p.Password == "" || p.Phone == "" ||
		p.Address == "" || p.Role == "" || p.OrganizationName == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.getByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hashed, err := s.hasher.Hash([]byte(p.Password))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:               uuid.New().String(),
		Name:             p.Name,
		Email:            p.Email,
		PasswordHash:     hashed,
		Phone:            p.Phone,
		Address:          p.Address,
		Role:             p.Role,
		OrganizationName: p.OrganizationName,
		RegisteredAt:     now,
		LastLoginAt:      now,
		Status:           domain.UserStatusActive,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.create(ctx, user); err != nil {
		// The unique constraint is the authority; a concurrent register for
		// the same email loses here even after the lookup saw no row.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Login authenticates with email and password and issues a session token.
// Fails with ErrUserNotFound for an unknown email and ErrInvalidCredentials
// for a wrong password; last_login is only updated on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.getByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := s.hasher.Compare(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	updated, err := s.updateLastLogin(ctx, user.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if updated != nil {
		user = updated
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Profile returns the account for the authenticated user id, or
// ErrUserNotFound when no row matches.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) getByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.users.GetByEmail(ctx, email)
}

func (s *AuthService) create(ctx context.Context, u *domain.User) error {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.users.Create(ctx, u)
}

func (s *AuthService) updateLastLogin(ctx context.Context, id string, at time.Time) (*domain.User, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.users.UpdateLastLogin(ctx, id, at)
}

// storeContext bounds a store call with the configured query timeout.
func (s *AuthService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
