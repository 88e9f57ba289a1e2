package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evenly-app/backend/pkg/helpers"
	"github.com/evenly-app/backend/pkg/response"
)

// Gin context keys populated on successful authentication.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxUserNameKey  = "userName"
)

// Auth gates protected routes on the session cookie. Validation is a
// pure signature check; no store is consulted.
func Auth(sessions *helpers.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.CodeNoAuth, "Missing session")
			return
		}
		claims, err := sessions.Verify(token)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.CodeInvalidToken, "Invalid session")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxUserNameKey, claims.Name)
		c.Next()
	}
}
