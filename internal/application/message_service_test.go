package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rumenji/messagely/internal/application"
	"github.com/rumenji/messagely/internal/domain/repository"
	"github.com/rumenji/messagely/internal/infrastructure/memory"
)

func newMessageService(t *testing.T) (*application.MessageService, *application.UserService) {
	t.Helper()
	users := memory.NewUserRepository()
	messages := memory.NewMessageRepository(users)
	userSvc := application.NewUserService(users, messages, bcrypt.MinCost, nil)
	return application.NewMessageService(messages, nil), userSvc
}

func TestCreateAndGetMessage(t *testing.T) {
	svc, userSvc := newMessageService(t)
	register(t, userSvc, "amy")
	register(t, userSvc, "bob")

	m, err := svc.Create(context.Background(), "amy", "bob", "hi")
	require.NoError(t, err)
	require.NotZero(t, m.ID)
	require.Equal(t, "amy", m.FromUsername)
	require.Equal(t, "bob", m.ToUsername)
	require.False(t, m.SentAt.IsZero())
	require.Nil(t, m.ReadAt, "a new message starts unread")

	got, err := svc.Get(context.Background(), m.ID)
	require.NoError(t, err)
	require.Equal(t, m.ID, got.ID)
	require.Equal(t, "hi", got.Body)
	require.Equal(t, "amy", got.FromUser.Username)
	require.Equal(t, "bob", got.ToUser.Username)
	require.Empty(t, got.FromUser.Password)
	require.Empty(t, got.ToUser.Password)
}

func TestCreateMessage_UnknownRecipient(t *testing.T) {
	svc, userSvc := newMessageService(t)
	register(t, userSvc, "amy")

	_, err := svc.Create(context.Background(), "amy", "nobody", "hi")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetMessage_NotFound(t *testing.T) {
	svc, _ := newMessageService(t)

	_, err := svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMarkRead(t *testing.T) {
	svc, userSvc := newMessageService(t)
	register(t, userSvc, "amy")
	register(t, userSvc, "bob")

	m, err := svc.Create(context.Background(), "amy", "bob", "hi")
	require.NoError(t, err)

	readAt, err := svc.MarkRead(context.Background(), m.ID)
	require.NoError(t, err)
	require.False(t, readAt.IsZero())

	got, err := svc.Get(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ReadAt)

	// A repeat call re-sets read_at to a later (or equal) time, never back
	// to unset.
	time.Sleep(time.Millisecond)
	again, err := svc.MarkRead(context.Background(), m.ID)
	require.NoError(t, err)
	require.False(t, again.Before(readAt))

	got, err = svc.Get(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ReadAt)

	_, err = svc.MarkRead(context.Background(), 9999)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
