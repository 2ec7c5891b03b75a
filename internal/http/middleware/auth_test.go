package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskdeck/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(tokens *service.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestAuthMissingHeader(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "error")
}

func TestAuthInvalidToken(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	r := newAuthRouter(tokens)

	for _, header := range []string{
		"Bearer garbage",
		"Bearer ",
		"NotBearer token",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code, "header %q", header)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	expired := service.NewTokenService("test-secret", -time.Minute)
	tok, err := expired.Generate(7)
	require.NoError(t, err)

	r := newAuthRouter(service.NewTokenService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthValidToken(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)
	tok, err := tokens.Generate(7)
	require.NoError(t, err)

	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":7`)
}
