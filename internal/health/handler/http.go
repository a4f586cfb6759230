// Package handler exposes the health endpoint.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the record store is reachable (e.g. *sql.DB).
type Pinger interface {
	Ping() error
}

// Handler serves GET /health.
type Handler struct {
	db Pinger
}

// New returns a health Handler. db may be nil, in which case the DB check is skipped.
func New(db Pinger) *Handler {
	return &Handler{db: db}
}

// Health reports liveness and store reachability. Returns 503 when the store
// ping fails so load balancers stop routing here.
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "degraded",
				"service": "orgconnect-api",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "orgconnect-api",
	})
}
