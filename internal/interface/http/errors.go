package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/evenly-app/backend/config"
	"github.com/evenly-app/backend/pkg/response"
)

// internalError logs the failure and answers with detail only in development.
func internalError(c *gin.Context, logger *logrus.Logger, cfg *config.Config, err error) {
	if logger != nil {
		logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("unexpected error")
	}
	msg := "Something went wrong"
	if cfg.IsDevelopment() {
		msg = err.Error()
	}
	response.Fail(c, http.StatusInternalServerError, response.CodeInternalError, msg)
}
