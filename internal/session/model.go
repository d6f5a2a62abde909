package session

import "time"

// TemporaryUser is the anonymous shopping session. Its id doubles as the
// token handed to the client; there is no account behind it.
type TemporaryUser struct {
	ID        string    `json:"temporary_user_id"`
	CreatedAt time.Time `json:"created_at"`
}
