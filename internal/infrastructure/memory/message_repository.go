package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rumenji/messagely/internal/domain/entity"
	"github.com/rumenji/messagely/internal/domain/repository"
)

type MessageRepository struct {
	mu       sync.Mutex
	users    *UserRepository
	messages []*entity.Message
	nextID   int64
}

// NewMessageRepository wires the message store to a user store so joined
// reads can embed participant profiles, like the SQL implementation does.
func NewMessageRepository(users *UserRepository) *MessageRepository {
	return &MessageRepository{users: users, nextID: 1}
}

func (r *MessageRepository) Create(ctx context.Context, m *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users.mu.Lock()
	_, fromOK := r.users.users[m.FromUsername]
	_, toOK := r.users.users[m.ToUsername]
	r.users.mu.Unlock()
	if !fromOK || !toOK {
		// mirrors the foreign key violation mapping in postgres
		return repository.ErrNotFound
	}

	m.ID = r.nextID
	r.nextID++
	m.SentAt = time.Now()
	m.ReadAt = nil

	cp := *m
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *MessageRepository) Get(ctx context.Context, id int64) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.find(id)
	if m == nil {
		return nil, repository.ErrNotFound
	}

	cp := *m
	r.users.mu.Lock()
	cp.FromUser = r.users.publicProfile(m.FromUsername)
	cp.ToUser = r.users.publicProfile(m.ToUsername)
	r.users.mu.Unlock()
	return &cp, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, id int64) (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.find(id)
	if m == nil {
		return time.Time{}, repository.ErrNotFound
	}
	now := time.Now()
	m.ReadAt = &now
	return now, nil
}

func (r *MessageRepository) ListFrom(ctx context.Context, username string) ([]entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Message, 0)
	for _, m := range r.messages {
		if m.FromUsername != username {
			continue
		}
		cp := *m
		r.users.mu.Lock()
		cp.ToUser = r.users.publicProfile(m.ToUsername)
		r.users.mu.Unlock()
		out = append(out, cp)
	}
	return out, nil
}

func (r *MessageRepository) ListTo(ctx context.Context, username string) ([]entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Message, 0)
	for _, m := range r.messages {
		if m.ToUsername != username {
			continue
		}
		cp := *m
		r.users.mu.Lock()
		cp.FromUser = r.users.publicProfile(m.FromUsername)
		r.users.mu.Unlock()
		out = append(out, cp)
	}
	return out, nil
}

// find returns the stored message with the given id; callers must hold mu.
func (r *MessageRepository) find(id int64) *entity.Message {
	for _, m := range r.messages {
		if m.ID == id {
			return m
		}
	}
	return nil
}

var _ repository.MessageRepository = (*MessageRepository)(nil)
