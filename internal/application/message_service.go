package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rumenji/messagely/internal/domain/entity"
	repo "github.com/rumenji/messagely/internal/domain/repository"
)

// MessageService owns message creation, lookup, and the read transition.
type MessageService struct {
	Messages repo.MessageRepository
	Logger   *logrus.Logger
}

func NewMessageService(messages repo.MessageRepository, logger *logrus.Logger) *MessageService {
	return &MessageService{Messages: messages, Logger: logger}
}

// Create persists a message from the authenticated sender. from is always
// the verified caller identity, never client payload. sent_at is set by the
// store, read_at starts unset.
func (s *MessageService) Create(ctx context.Context, from, to, body string) (*entity.Message, error) {
	m := &entity.Message{
		FromUsername: from,
		ToUsername:   to,
		Body:         body,
	}
	if err := s.Messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns the message with both participants' public profiles embedded.
func (s *MessageService) Get(ctx context.Context, id int64) (*entity.Message, error) {
	return s.Messages.Get(ctx, id)
}

// MarkRead sets read_at to now and returns it. Authorization (recipient-only)
// is the caller's responsibility; this is a plain state transition. A repeat
// call re-sets read_at to a later time, which is acceptable: the field only
// ever moves from unset to set.
func (s *MessageService) MarkRead(ctx context.Context, id int64) (time.Time, error) {
	return s.Messages.MarkRead(ctx, id)
}
