package handlers

import (
	"time"

	"github.com/rumenji/messagely/internal/domain/entity"
)

// userView is the public profile shape shared by every endpoint.
type userView struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// userDetailView adds the timestamps returned only on the owner's detail view.
type userDetailView struct {
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	JoinAt      time.Time  `json:"join_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// listedMessageView is one element of a from/to listing; exactly one of
// FromUser/ToUser is set, the other participant being the list's owner.
type listedMessageView struct {
	ID       int64      `json:"id"`
	Body     string     `json:"body"`
	SentAt   time.Time  `json:"sent_at"`
	ReadAt   *time.Time `json:"read_at"`
	FromUser *userView  `json:"from_user,omitempty"`
	ToUser   *userView  `json:"to_user,omitempty"`
}

// messageDetailView is the full message with both participants embedded.
type messageDetailView struct {
	ID       int64      `json:"id"`
	Body     string     `json:"body"`
	SentAt   time.Time  `json:"sent_at"`
	ReadAt   *time.Time `json:"read_at"`
	FromUser userView   `json:"from_user"`
	ToUser   userView   `json:"to_user"`
}

// createdMessageView is the response to POST /messages.
type createdMessageView struct {
	ID           int64     `json:"id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sent_at"`
}

func toUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}
	return &userView{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

func toListedMessageViews(messages []entity.Message) []listedMessageView {
	out := make([]listedMessageView, 0, len(messages))
	for i := range messages {
		m := &messages[i]
		out = append(out, listedMessageView{
			ID:       m.ID,
			Body:     m.Body,
			SentAt:   m.SentAt,
			ReadAt:   m.ReadAt,
			FromUser: toUserView(m.FromUser),
			ToUser:   toUserView(m.ToUser),
		})
	}
	return out
}
