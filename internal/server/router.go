// Package server wires the HTTP router: routes, CORS, and the auth gate.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	healthhandler "orgconnect/backend/internal/health/handler"
	identityhandler "orgconnect/backend/internal/identity/handler"
	"orgconnect/backend/internal/security"
	"orgconnect/backend/internal/server/middleware"
)

// Deps holds the dependencies the router hands to its handlers.
type Deps struct {
	// Users is the HTTP handler for register/login/logout/profile.
	Users *identityhandler.UserHandler
	// Tokens validates session tokens for the auth gate.
	Tokens *security.TokenProvider
	// HealthPinger is used by GET /health for store reachability (e.g. *sql.DB). May be nil.
	HealthPinger healthhandler.Pinger
	// CORSOrigins is the list of allowed CORS origins. Credentials are always
	// allowed so the session cookie survives cross-origin frontends.
	CORSOrigins []string
}

// NewRouter builds the Gin engine with default middleware (logger, recovery)
// and registers all routes.
//
// Route table:
//   - POST /user/register  — public
//   - POST /user/login     — public
//   - POST /user/logout    — auth gate
//   - GET  /user           — auth gate
//   - GET  /health         — public
func NewRouter(deps Deps) *gin.Engine {
	router := gin.Default()

	if len(deps.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = deps.CORSOrigins
		corsConfig.AllowCredentials = true
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
		router.Use(cors.New(corsConfig))
	}

	router.GET("/health", healthhandler.New(deps.HealthPinger).Health)

	authGate := middleware.RequireAuth(deps.Tokens)

	user := router.Group("/user")
	{
		user.POST("/register", deps.Users.Register)
		user.POST("/login", deps.Users.Login)
		user.POST("/logout", authGate, deps.Users.Logout)
		user.GET("", authGate, deps.Users.Profile)
	}

	return router
}
