package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rumenji/messagely/internal/application"
	repo "github.com/rumenji/messagely/internal/domain/repository"
	"github.com/rumenji/messagely/pkg/response"
	"github.com/rumenji/messagely/pkg/validation"
)

type MessageHandler struct {
	Messages *application.MessageService
	Logger   *logrus.Logger
}

func NewMessageHandler(messages *application.MessageService, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{Messages: messages, Logger: logger}
}

type createMessageRequest struct {
	ToUsername string `json:"to_username" binding:"required"`
	Body       string `json:"body" binding:"required"`
}

// Get handles GET /messages/:id. Only a participant (sender or recipient)
// may see the message; anyone else gets 401.
func (h *MessageHandler) Get(c *gin.Context) {
	id, ok := messageID(c)
	if !ok {
		return
	}

	m, err := h.Messages.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "message not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("id", id).Error("get message failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}

	current := currentUsername(c)
	if current != m.FromUsername && current != m.ToUsername {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": messageDetailView{
		ID:       m.ID,
		Body:     m.Body,
		SentAt:   m.SentAt,
		ReadAt:   m.ReadAt,
		FromUser: *toUserView(m.FromUser),
		ToUser:   *toUserView(m.ToUser),
	}})
}

// Create handles POST /messages: {to_username, body} => {message: {...}}.
// The sender is always the authenticated caller, never the payload.
func (h *MessageHandler) Create(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "to_username and body are required", validation.ToDetails(err))
		return
	}

	m, err := h.Messages.Create(c.Request.Context(), currentUsername(c), req.ToUsername, req.Body)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "recipient not found", nil)
			return
		}
		h.Logger.WithError(err).Error("create message failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": createdMessageView{
		ID:           m.ID,
		FromUsername: m.FromUsername,
		ToUsername:   m.ToUsername,
		Body:         m.Body,
		SentAt:       m.SentAt,
	}})
}

// MarkRead handles POST /messages/:id/read => {read: {id, read_at}}.
// Only the recipient may mark a message read; the sender is rejected even
// though they can view the same message.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := messageID(c)
	if !ok {
		return
	}

	m, err := h.Messages.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "message not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("id", id).Error("get message failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}

	if currentUsername(c) != m.ToUsername {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	readAt, err := h.Messages.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("id", id).Error("mark read failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"read": gin.H{"id": id, "read_at": readAt}})
}

func messageID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid message id", nil)
		return 0, false
	}
	return id, true
}
