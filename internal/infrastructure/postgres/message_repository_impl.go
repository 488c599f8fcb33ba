package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rumenji/messagely/internal/domain/entity"
	"github.com/rumenji/messagely/internal/domain/repository"
)

// Postgres foreign_key_violation, raised when a participant username does
// not reference an existing user.
const foreignKeyViolation = "23503"

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Create(ctx context.Context, m *entity.Message) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO messages (from_username, to_username, body, sent_at)
		VALUES ($1, $2, $3, current_timestamp)
		RETURNING id, sent_at
	`, m.FromUsername, m.ToUsername, m.Body)

	if err := row.Scan(&m.ID, &m.SentAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *MessageRepository) Get(ctx context.Context, id int64) (*entity.Message, error) {
	m := &entity.Message{FromUser: &entity.User{}, ToUser: &entity.User{}}

	row := r.pool.QueryRow(ctx, `
		SELECT m.id, m.body, m.sent_at, m.read_at,
		       f.username, f.first_name, f.last_name, f.phone,
		       t.username, t.first_name, t.last_name, t.phone
		FROM messages AS m
		INNER JOIN users AS f ON (m.from_username = f.username)
		INNER JOIN users AS t ON (m.to_username = t.username)
		WHERE m.id = $1
	`, id)

	if err := row.Scan(&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
		&m.FromUser.Username, &m.FromUser.FirstName, &m.FromUser.LastName, &m.FromUser.Phone,
		&m.ToUser.Username, &m.ToUser.FirstName, &m.ToUser.LastName, &m.ToUser.Phone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	m.FromUsername = m.FromUser.Username
	m.ToUsername = m.ToUser.Username
	return m, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, id int64) (time.Time, error) {
	var readAt time.Time

	row := r.pool.QueryRow(ctx, `
		UPDATE messages
		SET read_at = current_timestamp
		WHERE id = $1
		RETURNING read_at
	`, id)

	if err := row.Scan(&readAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, repository.ErrNotFound
		}
		return time.Time{}, err
	}
	return readAt, nil
}

// ListFrom returns messages sent by username, each embedding the recipient's
// public profile.
func (r *MessageRepository) ListFrom(ctx context.Context, username string) ([]entity.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.to_username, m.body, m.sent_at, m.read_at,
		       u.username, u.first_name, u.last_name, u.phone
		FROM messages AS m
		INNER JOIN users AS u ON (m.to_username = u.username)
		WHERE m.from_username = $1
		ORDER BY m.sent_at ASC
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]entity.Message, 0)
	for rows.Next() {
		m := entity.Message{FromUsername: username, ToUser: &entity.User{}}
		if err := rows.Scan(&m.ID, &m.ToUsername, &m.Body, &m.SentAt, &m.ReadAt,
			&m.ToUser.Username, &m.ToUser.FirstName, &m.ToUser.LastName, &m.ToUser.Phone); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// ListTo returns messages received by username, each embedding the sender's
// public profile.
func (r *MessageRepository) ListTo(ctx context.Context, username string) ([]entity.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.from_username, m.body, m.sent_at, m.read_at,
		       u.username, u.first_name, u.last_name, u.phone
		FROM messages AS m
		INNER JOIN users AS u ON (m.from_username = u.username)
		WHERE m.to_username = $1
		ORDER BY m.sent_at ASC
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]entity.Message, 0)
	for rows.Next() {
		m := entity.Message{ToUsername: username, FromUser: &entity.User{}}
		if err := rows.Scan(&m.ID, &m.FromUsername, &m.Body, &m.SentAt, &m.ReadAt,
			&m.FromUser.Username, &m.FromUser.FirstName, &m.FromUser.LastName, &m.FromUser.Phone); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

var _ repository.MessageRepository = (*MessageRepository)(nil)
