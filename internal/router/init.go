package router

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/evenly-app/backend/config"
	"github.com/evenly-app/backend/internal/application"
	"github.com/evenly-app/backend/internal/domain/repository"
	handlers "github.com/evenly-app/backend/internal/interface/http"
	"github.com/evenly-app/backend/internal/router/modules"
	"github.com/evenly-app/backend/pkg/helpers"
)

// Deps carries everything the modules need, constructed once in main
// and passed down explicitly. There is no package-level container: the
// store handles are owned by the caller.
type Deps struct {
	Cfg      *config.Config
	Logger   *logrus.Logger
	Users    repository.UserRepository
	Groups   repository.GroupRepository
	Sessions *helpers.SessionManager
	RDB      *redis.Client
	DB       handlers.Pinger
}

// InitModules builds services and handlers from Deps and registers all
// feature modules plus the root health endpoint.
func InitModules(r *Registry, d Deps) {
	authSvc := application.NewAuthService(d.Users, d.Logger)
	groupSvc := application.NewGroupService(d.Groups, d.Logger)

	authHandler := handlers.NewAuthHandler(authSvc, d.Sessions, d.Logger, d.Cfg)
	groupHandler := handlers.NewGroupHandler(groupSvc, d.Logger, d.Cfg)

	r.Add(modules.NewAuthModule(authHandler, d.Sessions, d.RDB))
	r.Add(modules.NewGroupModule(groupHandler, d.Sessions, d.RDB))

	r.Engine.GET("/health", handlers.NewHealthHandler(d.DB).Check)
}
