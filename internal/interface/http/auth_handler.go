// Package handlers contains the Gin HTTP handlers.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/evenly-app/backend/config"
	"github.com/evenly-app/backend/internal/application"
	"github.com/evenly-app/backend/internal/interface/middleware"
	"github.com/evenly-app/backend/pkg/helpers"
	"github.com/evenly-app/backend/pkg/response"
	"github.com/evenly-app/backend/pkg/validation"
)

type AuthHandler struct {
	Svc      *application.AuthService
	Sessions *helpers.SessionManager
	Cookies  *helpers.CookieManager
	Logger   *logrus.Logger
	Cfg      *config.Config
}

func NewAuthHandler(svc *application.AuthService, sessions *helpers.SessionManager, logger *logrus.Logger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Svc:      svc,
		Sessions: sessions,
		Cookies:  helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure || cfg.IsProduction()),
		Logger:   logger,
		Cfg:      cfg,
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,personname"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, response.CodeValidationError, "Invalid payload", validation.ToDetails(err))
		return
	}

	pub, err := h.Svc.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, pub)
	case errors.Is(err, application.ErrUserExists):
		response.Fail(c, http.StatusConflict, response.CodeUserExists, "Email already registered")
	default:
		internalError(c, h.Logger, h.Cfg, err)
	}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, response.CodeValidationError, "Invalid payload", validation.ToDetails(err))
		return
	}

	pub, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		token, exp, issueErr := h.Sessions.Issue(pub.ID, pub.Email, pub.Name)
		if issueErr != nil {
			internalError(c, h.Logger, h.Cfg, issueErr)
			return
		}
		h.Cookies.Set(c, token, exp)
		c.JSON(http.StatusOK, pub)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.CodeInvalidCredentials, "Invalid email or password")
	default:
		internalError(c, h.Logger, h.Cfg, err)
	}
}

// Me GET /api/auth/me (auth required). The identity comes straight from
// the verified session claims; no store round trip.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":    c.GetString(middleware.CtxUserIDKey),
		"email": c.GetString(middleware.CtxUserEmailKey),
		"name":  c.GetString(middleware.CtxUserNameKey),
	})
}

// Logout POST /api/auth/logout. Idempotent: clearing an absent cookie
// still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"loggedOut": true})
}
