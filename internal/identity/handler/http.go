// Package handler exposes the auth flow over HTTP: register, login, logout,
// and profile retrieval.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"orgconnect/backend/internal/identity/service"
	"orgconnect/backend/internal/server/middleware"
	"orgconnect/backend/internal/user/domain"
)

// UserHandler maps auth service outcomes to HTTP responses. Internal errors
// are logged and never echoed to the client.
type UserHandler struct {
	auth         *service.AuthService
	log          zerolog.Logger
	cookieMaxAge int
}

// NewUserHandler returns a UserHandler. cookieTTL controls the session cookie
// Max-Age and should match the token lifetime.
func NewUserHandler(auth *service.AuthService, log zerolog.Logger, cookieTTL time.Duration) *UserHandler {
	return &UserHandler{
		auth:         auth,
		log:          log,
		cookieMaxAge: int(cookieTTL.Seconds()),
	}
}

type registerRequest struct {
	Nome            string `json:"nome" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Senha           string `json:"senha" binding:"required"`
	Telefone        string `json:"telefone" binding:"required"`
	Endereco        string `json:"endereco" binding:"required"`
	PerfilUsuario   string `json:"perfilUsuario" binding:"required"`
	NomeOrganizacao string `json:"nomeOrganizacao" binding:"required"`
}

type loginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// userView is the full account representation, minus the hashed secret.
type userView struct {
	IDUsuario       string    `json:"idUsuario"`
	Nome            string    `json:"nome"`
	Email           string    `json:"email"`
	Telefone        string    `json:"telefone"`
	Endereco        string    `json:"endereco"`
	PerfilUsuario   string    `json:"perfilUsuario"`
	NomeOrganizacao string    `json:"nomeOrganizacao"`
	DataCadastro    time.Time `json:"dataCadastro"`
	LastLogin       time.Time `json:"lastLogin"`
	Status          string    `json:"status"`
}

func toUserView(u *domain.User) userView {
	return userView{
		IDUsuario:       u.ID,
		Nome:            u.Name,
		Email:           u.Email,
		Telefone:        u.Phone,
		Endereco:        u.Address,
		PerfilUsuario:   u.Role,
		NomeOrganizacao: u.OrganizationName,
		DataCadastro:    u.RegisteredAt,
		LastLogin:       u.LastLoginAt,
		Status:          string(u.Status),
	}
}

// Register handles POST /user/register. The issued token is returned in the
// response body; only login attaches it as a cookie.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Campos necessários do usuário são obrigatórios.",
		})
		return
	}

	res, err := h.auth.Register(c.Request.Context(), service.RegisterParams{
		Name:             req.Nome,
		Email:            req.Email,
		Password:         req.Senha,
		Phone:            req.Telefone,
		Address:          req.Endereco,
		Role:             req.PerfilUsuario,
		OrganizationName: req.NomeOrganizacao,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Campos necessários do usuário são obrigatórios.",
			})
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Email já registrado",
			})
		default:
			h.log.Error().Err(err).Str("email", req.Email).Msg("register failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Erro ao cadastrar usuário",
				"error":   "internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"usuario": toUserView(res.User),
		"token":   res.Token,
	})
}

// Login handles POST /user/login. On success the session token is attached as
// a cookie and a reduced user view is returned.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email e senha são obrigatórios.",
		})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Usuário não encontrado"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Senha incorreta"})
		default:
			h.log.Error().Err(err).Str("email", req.Email).Msg("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Erro ao fazer login",
				"error":   "internal server error",
			})
		}
		return
	}

	h.attachSessionCookie(c, res.Token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login bem-sucedido!",
		"user": gin.H{
			"id":        res.User.ID,
			"nameUser":  res.User.Name,
			"email":     res.User.Email,
			"lastLogin": res.User.LastLoginAt,
		},
	})
}

// Logout handles POST /user/logout. It clears the session cookie; the route
// sits behind the auth gate, so an unauthenticated call never reaches here.
func (h *UserHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso!"})
}

// Profile handles GET /user. The auth gate resolved the identity; the
// response is the full profile minus the hashed secret.
func (h *UserHandler) Profile(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Usuário não autenticado."})
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Usuário não encontrado."})
			return
		}
		h.log.Error().Err(err).Str("user_id", id.UserID).Msg("profile lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Erro ao buscar usuário",
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuario": toUserView(user)})
}

// attachSessionCookie binds the token to the session: HTTP-only, TLS-only,
// same-site strict.
func (h *UserHandler) attachSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, h.cookieMaxAge, "/", "", true, true)
}

// clearSessionCookie instructs the client to delete the session cookie immediately.
func (h *UserHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
}
