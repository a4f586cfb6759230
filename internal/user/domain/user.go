package domain

import (
	"errors"
	"time"
)

// User is the core user account entity. PasswordHash holds the bcrypt hash
// only; the plaintext secret is never persisted or logged.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	Phone            string
	Address          string
	Role             string // role label, e.g. RoleAdmin/RoleUser; carried in tokens, not enforced here
	OrganizationName string
	RegisteredAt     time.Time // set once, at creation
	LastLoginAt      time.Time // updated on every successful login
	Status           UserStatus
}

type UserStatus string

// Lifecycle states. Only active exists today; suspended and deleted are
// reserved for account lifecycle work.
const (
	UserStatusActive    UserStatus = "ATIVO"
	UserStatusSuspended UserStatus = "SUSPENSO"
	UserStatusDeleted   UserStatus = "EXCLUIDO"
)

// Role labels carried in session tokens.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.ID == "" {
		return errors.New("id is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	if u.Status == "" {
		u.Status = UserStatusActive
	}
	return nil
}
