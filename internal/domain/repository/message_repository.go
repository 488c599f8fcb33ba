package repository

import (
	"context"
	"time"

	"github.com/rumenji/messagely/internal/domain/entity"
)

// MessageRepository defines the interface for message-related database
// operations. List results embed the other participant's public profile.
type MessageRepository interface {
	Create(ctx context.Context, m *entity.Message) error
	Get(ctx context.Context, id int64) (*entity.Message, error)
	MarkRead(ctx context.Context, id int64) (time.Time, error)
	ListFrom(ctx context.Context, username string) ([]entity.Message, error)
	ListTo(ctx context.Context, username string) ([]entity.Message, error)
}
