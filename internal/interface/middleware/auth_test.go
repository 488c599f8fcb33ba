package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rumenji/messagely/internal/interface/middleware"
	"github.com/rumenji/messagely/pkg/helpers"
)

func newProtectedEngine(tokens *helpers.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/whoami", middleware.Auth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString(middleware.CtxUsernameKey)})
	})
	engine.GET("/users/:username", middleware.Auth(tokens), middleware.RequireSelf("username"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func get(engine *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	tokens := helpers.NewTokenManager("secret", 0)
	engine := newProtectedEngine(tokens)

	w := get(engine, "/whoami", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(engine, "/whoami", "Bearer garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Tokens signed with another secret are rejected.
	other, err := helpers.NewTokenManager("other-secret", 0).Generate("amy")
	require.NoError(t, err)
	w = get(engine, "/whoami", "Bearer "+other)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	tok, err := tokens.Generate("amy")
	require.NoError(t, err)
	w = get(engine, "/whoami", "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"username":"amy"`)

	// A raw token without the Bearer prefix is accepted too.
	w = get(engine, "/whoami", tok)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSelf(t *testing.T) {
	tokens := helpers.NewTokenManager("secret", 0)
	engine := newProtectedEngine(tokens)

	tok, err := tokens.Generate("amy")
	require.NoError(t, err)

	w := get(engine, "/users/amy", "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(engine, "/users/bob", "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
