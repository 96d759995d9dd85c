package session

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("session not found")
	ErrInvalidToken = errors.New("invalid session token")
)

// Session is the server-side record behind a login cookie. It holds only the
// identity reference and the pending flash message; user flags are re-read
// from the database on every request so routing never acts on stale state.
type Session struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	EmployeeCode string    `json:"employee_code"`
	Flash        string    `json:"flash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store persists sessions keyed by session ID.
type Store interface {
	Save(ctx context.Context, session Session) error
	Find(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
