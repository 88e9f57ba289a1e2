package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/evenly-app/backend/internal/interface/http"
	"github.com/evenly-app/backend/internal/interface/middleware"
	"github.com/evenly-app/backend/pkg/helpers"
)

// GroupModule wires the group endpoints. All of them are protected.
// POST /api/groups, GET /api/groups

type GroupModule struct {
	Handler  *handlers.GroupHandler
	Sessions *helpers.SessionManager
	RDB      *redis.Client
}

func NewGroupModule(h *handlers.GroupHandler, sessions *helpers.SessionManager, rdb *redis.Client) *GroupModule {
	return &GroupModule{Handler: h, Sessions: sessions, RDB: rdb}
}

func (m *GroupModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions))
	auth.Use(middleware.RateLimit(m.RDB, 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.POST("/groups", m.Handler.Create)
		auth.GET("/groups", m.Handler.List)
	}
}
