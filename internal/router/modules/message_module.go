package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rumenji/messagely/internal/interface/http"
	"github.com/rumenji/messagely/internal/interface/middleware"
	"github.com/rumenji/messagely/pkg/helpers"
)

// MessageModule registers the message routes. All require a token; the
// participant and recipient checks need the loaded message, so they live in
// the handlers rather than in middleware.
type MessageModule struct {
	Handler *handlers.MessageHandler
	Tokens  *helpers.TokenManager
}

func NewMessageModule(h *handlers.MessageHandler, tokens *helpers.TokenManager) *MessageModule {
	return &MessageModule{Handler: h, Tokens: tokens}
}

func (m *MessageModule) Register(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	messages.Use(middleware.Auth(m.Tokens))
	{
		messages.POST("", m.Handler.Create)
		messages.GET("/:id", m.Handler.Get)
		messages.POST("/:id/read", m.Handler.MarkRead)
	}
}
