package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rumenji/messagely/internal/application"
	repo "github.com/rumenji/messagely/internal/domain/repository"
	"github.com/rumenji/messagely/internal/interface/middleware"
	"github.com/rumenji/messagely/pkg/response"
)

type UserHandler struct {
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(users *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

// List handles GET /users => {users: [{username, first_name, last_name, phone}, ...]}
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.All(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, *toUserView(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"users": views})
}

// Get handles GET /users/:username => {user: {..., join_at, last_login_at}}
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Users.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get user failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userDetailView{
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		JoinAt:      u.JoinAt,
		LastLoginAt: u.LastLoginAt,
	}})
}

// MessagesTo handles GET /users/:username/to: messages the user received,
// each with the sender's public profile.
func (h *UserHandler) MessagesTo(c *gin.Context) {
	messages, err := h.Users.MessagesTo(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.Logger.WithError(err).Error("list received messages failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": toListedMessageViews(messages)})
}

// MessagesFrom handles GET /users/:username/from: messages the user sent,
// each with the recipient's public profile.
func (h *UserHandler) MessagesFrom(c *gin.Context) {
	messages, err := h.Users.MessagesFrom(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.Logger.WithError(err).Error("list sent messages failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": toListedMessageViews(messages)})
}

// currentUsername returns the identity set by the auth middleware.
func currentUsername(c *gin.Context) string {
	return c.GetString(middleware.CtxUsernameKey)
}
