package repository

import (
	"context"
	"errors"

	"github.com/rumenji/messagely/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a referenced user or message does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when a registration hits the
	// uniqueness constraint on users.username.
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	Get(ctx context.Context, username string) (*entity.User, error)
	All(ctx context.Context) ([]entity.User, error)
	UpdateLoginTimestamp(ctx context.Context, username string) error
}
