package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"orgconnect/backend/internal/config"
	"orgconnect/backend/internal/db"
	identityhandler "orgconnect/backend/internal/identity/handler"
	identityservice "orgconnect/backend/internal/identity/service"
	"orgconnect/backend/internal/security"
	"orgconnect/backend/internal/server"
	userrepo "orgconnect/backend/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "orgconnect-api").Logger()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	pool, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	hasher := security.NewHasher(cfg.BcryptCost)
	tokens := security.NewTokenProvider([]byte(cfg.JWTSecret), cfg.TokenTTL())
	auth := identityservice.NewAuthService(userrepo.NewPostgresRepository(pool), hasher, tokens, cfg.QueryTimeout())
	users := identityhandler.NewUserHandler(auth, logger, tokens.TTL())

	router := server.NewRouter(server.Deps{
		Users:        users,
		Tokens:       tokens,
		HealthPinger: pool,
		CORSOrigins:  cfg.CORSOrigins(),
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("HTTP server stopped")
}
