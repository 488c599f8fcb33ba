package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rumenji/messagely/pkg/helpers"
	"github.com/rumenji/messagely/pkg/response"
)

// CtxUsernameKey is where Auth stores the verified identity in the gin context.
const CtxUsernameKey = "username"

// Auth is the authentication gate: it requires a verifiable bearer token in
// the Authorization header and sets the embedded username in the context.
// Requests without a valid token never reach the underlying handler.
func Auth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "please login first", nil)
			return
		}
		username, err := tokens.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token", nil)
			return
		}
		c.Set(CtxUsernameKey, username)
		c.Next()
	}
}

// RequireSelf enforces the owner-match rule: the authenticated username must
// equal the named path parameter. Must run after Auth.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUsernameKey) != c.Param(param) {
			response.AbortError(c, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return strings.TrimSpace(h)
}
