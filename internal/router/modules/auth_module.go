package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rumenji/messagely/internal/interface/http"
)

// AuthModule registers the public endpoints.
// POST /login and POST /register both answer with {token}.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/login", m.Handler.Login)
	rg.POST("/register", m.Handler.Register)
}
