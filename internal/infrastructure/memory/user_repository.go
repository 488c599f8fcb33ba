// Package memory provides in-memory repository implementations. They back the
// service and handler tests so the service layer never needs a live Postgres,
// and mirror the error contract of the postgres package.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rumenji/messagely/internal/domain/entity"
	"github.com/rumenji/messagely/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	now := time.Now()
	u.JoinAt = now
	last := now
	u.LastLoginAt = &last

	cp := *u
	r.users[u.Username] = &cp
	r.order = append(r.order, u.Username)
	return nil
}

func (r *UserRepository) Get(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) All(ctx context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]entity.User, 0, len(r.order))
	for _, name := range r.order {
		u := r.users[name]
		users = append(users, entity.User{
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Phone:     u.Phone,
		})
	}
	return users, nil
}

func (r *UserRepository) UpdateLoginTimestamp(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

// publicProfile returns the user's public fields only; callers must hold mu.
func (r *UserRepository) publicProfile(username string) *entity.User {
	u, ok := r.users[username]
	if !ok {
		return nil
	}
	return &entity.User{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
