package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/rumenji/messagely/internal/domain/entity"
	repo "github.com/rumenji/messagely/internal/domain/repository"
	"github.com/rumenji/messagely/pkg/helpers"
)

// UserService owns registration, authentication, and profile reads. It
// composes the user store with the message store so per-user message
// listings live next to the profile they belong to.
type UserService struct {
	Users      repo.UserRepository
	Messages   repo.MessageRepository
	BcryptCost int
	Logger     *logrus.Logger
}

func NewUserService(users repo.UserRepository, messages repo.MessageRepository, bcryptCost int, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Messages: messages, BcryptCost: bcryptCost, Logger: logger}
}

type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Register hashes the password and persists the new user. The returned user
// never carries the hash. Duplicate usernames surface as
// repo.ErrDuplicateUsername, including when two registrations race at the
// store's uniqueness constraint.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Username:  in.Username,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return nil, err
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", in.Username).Error("create user failed")
		}
		return nil, err
	}

	u.Password = ""
	return u, nil
}

// Authenticate reports whether username/password is valid. Unknown username
// and wrong password both come back as a plain false so callers cannot
// distinguish the two; only store failures produce an error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	u, err := s.Users.Get(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return helpers.CompareHashAndPassword(u.Password, password), nil
}

// UpdateLoginTimestamp sets last_login_at to now.
func (s *UserService) UpdateLoginTimestamp(ctx context.Context, username string) error {
	return s.Users.UpdateLoginTimestamp(ctx, username)
}

// All returns every user's public profile fields in store order.
func (s *UserService) All(ctx context.Context) ([]entity.User, error) {
	return s.Users.All(ctx)
}

// Get returns one user's profile including join and last-login timestamps.
func (s *UserService) Get(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Users.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	u.Password = ""
	return u, nil
}

// MessagesFrom lists messages the user sent, each with the recipient's
// public profile embedded.
func (s *UserService) MessagesFrom(ctx context.Context, username string) ([]entity.Message, error) {
	return s.Messages.ListFrom(ctx, username)
}

// MessagesTo lists messages the user received, each with the sender's
// public profile embedded.
func (s *UserService) MessagesTo(ctx context.Context, username string) ([]entity.Message, error) {
	return s.Messages.ListTo(ctx, username)
}
