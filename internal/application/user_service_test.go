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

func newUserService(t *testing.T) (*application.UserService, *memory.UserRepository, *memory.MessageRepository) {
	t.Helper()
	users := memory.NewUserRepository()
	messages := memory.NewMessageRepository(users)
	svc := application.NewUserService(users, messages, bcrypt.MinCost, nil)
	return svc, users, messages
}

func register(t *testing.T, svc *application.UserService, username string) {
	t.Helper()
	_, err := svc.Register(context.Background(), application.RegisterInput{
		Username:  username,
		Password:  "pw123456",
		FirstName: "First",
		LastName:  "Last",
		Phone:     "555",
	})
	require.NoError(t, err)
}

func TestRegister_ReturnsProfileWithoutHash(t *testing.T) {
	svc, users, _ := newUserService(t)

	u, err := svc.Register(context.Background(), application.RegisterInput{
		Username:  "amy",
		Password:  "pw123456",
		FirstName: "Amy",
		LastName:  "Z",
		Phone:     "555",
	})
	require.NoError(t, err)
	require.Equal(t, "amy", u.Username)
	require.Empty(t, u.Password, "returned profile must never contain the hash")

	// The stored record has a hash, and it is not the plain password.
	stored, err := users.Get(context.Background(), "amy")
	require.NoError(t, err)
	require.NotEmpty(t, stored.Password)
	require.NotEqual(t, "pw123456", stored.Password)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _, _ := newUserService(t)

	register(t, svc, "amy")
	_, err := svc.Register(context.Background(), application.RegisterInput{Username: "amy", Password: "otherpw"})
	require.ErrorIs(t, err, repository.ErrDuplicateUsername)

	// The original record survived untouched.
	ok, err := svc.Authenticate(context.Background(), "amy", "pw123456")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAuthenticate_BooleanContract(t *testing.T) {
	svc, _, _ := newUserService(t)
	register(t, svc, "amy")

	ok, err := svc.Authenticate(context.Background(), "amy", "pw123456")
	require.NoError(t, err)
	require.True(t, ok)

	// Wrong password and unknown user both come back (false, nil).
	ok, err = svc.Authenticate(context.Background(), "amy", "wrongpass")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.Authenticate(context.Background(), "nobody", "pw123456")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUpdateLoginTimestamp(t *testing.T) {
	svc, users, _ := newUserService(t)
	register(t, svc, "amy")

	before, err := users.Get(context.Background(), "amy")
	require.NoError(t, err)
	require.NotNil(t, before.LastLoginAt)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, svc.UpdateLoginTimestamp(context.Background(), "amy"))

	after, err := svc.Get(context.Background(), "amy")
	require.NoError(t, err)
	require.NotNil(t, after.LastLoginAt)
	require.True(t, after.LastLoginAt.After(*before.LastLoginAt), "last_login_at must strictly advance")

	require.ErrorIs(t, svc.UpdateLoginTimestamp(context.Background(), "nobody"), repository.ErrNotFound)
}

func TestGet_And_All(t *testing.T) {
	svc, _, _ := newUserService(t)
	register(t, svc, "amy")
	register(t, svc, "bob")

	u, err := svc.Get(context.Background(), "amy")
	require.NoError(t, err)
	require.Empty(t, u.Password)
	require.False(t, u.JoinAt.IsZero())

	_, err = svc.Get(context.Background(), "nobody")
	require.ErrorIs(t, err, repository.ErrNotFound)

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, u := range all {
		require.Empty(t, u.Password)
		require.True(t, u.JoinAt.IsZero(), "listing carries public fields only")
	}
}

func TestMessagesFromAndTo(t *testing.T) {
	svc, _, messages := newUserService(t)
	register(t, svc, "amy")
	register(t, svc, "bob")

	msgSvc := application.NewMessageService(messages, nil)
	_, err := msgSvc.Create(context.Background(), "amy", "bob", "hi bob")
	require.NoError(t, err)
	_, err = msgSvc.Create(context.Background(), "bob", "amy", "hi amy")
	require.NoError(t, err)

	from, err := svc.MessagesFrom(context.Background(), "amy")
	require.NoError(t, err)
	require.Len(t, from, 1)
	require.Equal(t, "hi bob", from[0].Body)
	require.NotNil(t, from[0].ToUser)
	require.Equal(t, "bob", from[0].ToUser.Username)
	require.Empty(t, from[0].ToUser.Password)

	to, err := svc.MessagesTo(context.Background(), "amy")
	require.NoError(t, err)
	require.Len(t, to, 1)
	require.Equal(t, "hi amy", to[0].Body)
	require.NotNil(t, to[0].FromUser)
	require.Equal(t, "bob", to[0].FromUser.Username)
}
