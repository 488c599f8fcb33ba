package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rumenji/messagely/internal/interface/http"
	"github.com/rumenji/messagely/internal/interface/middleware"
	"github.com/rumenji/messagely/pkg/helpers"
)

// UserModule registers the user routes.
// GET /users needs a token; the per-user routes additionally require the
// token identity to match the :username path segment.
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenManager
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenManager) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.Tokens))
	{
		users.GET("", m.Handler.List)

		self := users.Group("/:username")
		self.Use(middleware.RequireSelf("username"))
		{
			self.GET("", m.Handler.Get)
			self.GET("/to", m.Handler.MessagesTo)
			self.GET("/from", m.Handler.MessagesFrom)
		}
	}
}
