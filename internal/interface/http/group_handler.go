package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/evenly-app/backend/config"
	"github.com/evenly-app/backend/internal/application"
	"github.com/evenly-app/backend/internal/interface/middleware"
	"github.com/evenly-app/backend/pkg/response"
)

type GroupHandler struct {
	Svc    *application.GroupService
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewGroupHandler(svc *application.GroupService, logger *logrus.Logger, cfg *config.Config) *GroupHandler {
	return &GroupHandler{Svc: svc, Logger: logger, Cfg: cfg}
}

type createGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create POST /api/groups (auth required)
func (h *GroupHandler) Create(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.CodeBadRequest, "Group name is required")
		return
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	g, err := h.Svc.Create(c.Request.Context(), userID, req.Name, req.Description)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, g)
	case errors.Is(err, application.ErrGroupNameRequired):
		response.Fail(c, http.StatusBadRequest, response.CodeBadRequest, "Group name is required")
	default:
		internalError(c, h.Logger, h.Cfg, err)
	}
}

// List GET /api/groups (auth required) returns only the caller's groups.
func (h *GroupHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	groups, err := h.Svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, h.Logger, h.Cfg, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
