package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evenly-app/backend/pkg/helpers"
	"github.com/evenly-app/backend/pkg/response"
)

func authTestRouter(sessions *helpers.SessionManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetString(CtxUserIDKey),
			"email": c.GetString(CtxUserEmailKey),
			"name":  c.GetString(CtxUserNameKey),
		})
	})
	return r
}

func errorCode(t *testing.T, body []byte) response.Code {
	t.Helper()
	var eb response.ErrorBody
	require.NoError(t, json.Unmarshal(body, &eb))
	return eb.Error.Code
}

func TestAuth_NoCookie(t *testing.T) {
	r := authTestRouter(helpers.NewSessionManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.CodeNoAuth, errorCode(t, w.Body.Bytes()))
}

func TestAuth_InvalidToken(t *testing.T) {
	r := authTestRouter(helpers.NewSessionManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "tampered"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.CodeInvalidToken, errorCode(t, w.Body.Bytes()))
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := helpers.NewSessionManager("secret", -time.Minute)
	token, _, err := expired.Issue("u-1", "ana@example.com", "Ana")
	require.NoError(t, err)

	r := authTestRouter(helpers.NewSessionManager("secret", time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.CodeInvalidToken, errorCode(t, w.Body.Bytes()))
}

func TestAuth_ValidToken(t *testing.T) {
	sessions := helpers.NewSessionManager("secret", time.Hour)
	token, _, err := sessions.Issue("u-1", "ana@example.com", "Ana")
	require.NoError(t, err)

	r := authTestRouter(sessions)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "u-1", got["id"])
	assert.Equal(t, "ana@example.com", got["email"])
	assert.Equal(t, "Ana", got["name"])
}
