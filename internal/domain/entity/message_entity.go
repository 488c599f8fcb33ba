package entity

import (
	"time"
)

// Message is a direct message between two users. ReadAt is nil until the
// recipient marks the message read.
//
// FromUser/ToUser are populated only on joined reads and then carry just the
// other participant's public fields (no password, no timestamps).
type Message struct {
	ID           int64
	FromUsername string
	ToUsername   string
	Body         string
	SentAt       time.Time
	ReadAt       *time.Time

	FromUser *User
	ToUser   *User
}
