// seed inserts a development admin account for local testing.
// Idempotent: skips the insert if the dev admin (admin@example.com) already exists.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"orgconnect/backend/internal/config"
	"orgconnect/backend/internal/db"
	"orgconnect/backend/internal/security"
	"orgconnect/backend/internal/user/domain"
	userrepo "orgconnect/backend/internal/user/repository"
)

const (
	devAdminEmail    = "admin@example.com"
	devAdminPassword = "password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	pool, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := userrepo.NewPostgresRepository(pool)
	existing, err := repo.GetByEmail(ctx, devAdminEmail)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	if existing != nil {
		log.Printf("seed: %s already exists, nothing to do", devAdminEmail)
		return
	}

	hashed, err := security.NewHasher(cfg.BcryptCost).Hash([]byte(devAdminPassword))
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:               uuid.New().String(),
		Name:             "Dev Admin",
		Email:            devAdminEmail,
		PasswordHash:     hashed,
		Phone:            "000000000",
		Address:          "localhost",
		Role:             domain.RoleAdmin,
		OrganizationName: "OrgConnect Dev",
		RegisteredAt:     now,
		LastLoginAt:      now,
		Status:           domain.UserStatusActive,
	}
	if err := repo.Create(ctx, admin); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seed: created %s (role %s)", devAdminEmail, admin.Role)
}
