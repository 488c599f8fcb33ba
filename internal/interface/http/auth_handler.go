package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rumenji/messagely/internal/application"
	repo "github.com/rumenji/messagely/internal/domain/repository"
	"github.com/rumenji/messagely/pkg/helpers"
	"github.com/rumenji/messagely/pkg/response"
	"github.com/rumenji/messagely/pkg/validation"
)

// AuthHandler serves the public endpoints: login and register. Both issue a
// bearer token and refresh the user's last-login timestamp, like the
// authenticated flows they stand in for.
type AuthHandler struct {
	Users  *application.UserService
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewAuthHandler(users *application.UserService, tokens *helpers.TokenManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Login handles POST /login: {username, password} => {token}.
// Unknown username and wrong password get the same answer so the endpoint
// cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username and password are required", validation.ToDetails(err))
		return
	}

	ok, err := h.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.Logger.WithError(err).WithField("username", req.Username).Error("authenticate failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	if !ok {
		response.Error(c, http.StatusBadRequest, "invalid username/password", nil)
		return
	}

	h.issueToken(c, req.Username)
}

// Register handles POST /register: registers, logs in, and returns {token}.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username and password are required", validation.ToDetails(err))
		return
	}

	_, err := h.Users.Register(c.Request.Context(), application.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			response.Error(c, http.StatusBadRequest, "username already taken", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}

	h.issueToken(c, req.Username)
}

func (h *AuthHandler) issueToken(c *gin.Context, username string) {
	token, err := h.Tokens.Generate(username)
	if err != nil {
		h.Logger.WithError(err).WithField("username", username).Error("token generation failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	// A failed timestamp update must not fail the login.
	if err := h.Users.UpdateLoginTimestamp(c.Request.Context(), username); err != nil {
		h.Logger.WithError(err).WithField("username", username).Warn("update login timestamp failed")
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
