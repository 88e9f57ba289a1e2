package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/evenly-app/backend/internal/interface/http"
	"github.com/evenly-app/backend/internal/interface/middleware"
	"github.com/evenly-app/backend/pkg/helpers"
)

// AuthModule wires registration, login, logout and the session probe.
// Public: POST /api/auth/register, POST /api/auth/login, POST /api/auth/logout
// Protected: GET /api/auth/me

type AuthModule struct {
	Handler  *handlers.AuthHandler
	Sessions *helpers.SessionManager
	RDB      *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, sessions *helpers.SessionManager, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Sessions: sessions, RDB: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	// Logout never requires auth; clearing an absent cookie is fine.
	rg.POST("/auth/logout", m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
