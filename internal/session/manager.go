package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager issues and resolves login sessions. The cookie carries an HS256
// signed token binding the session ID, so a forged or tampered cookie is
// rejected before the store is ever consulted.
type Manager struct {
	store      Store
	secret     []byte
	cookieName string
	ttl        time.Duration
}

func NewManager(store Store, secret, cookieName string, ttl time.Duration) *Manager {
	return &Manager{
		store:      store,
		secret:     []byte(secret),
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// Issue creates a session for the given user and sets the login cookie.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, userID int64, employeeCode string) (Session, error) {
	now := time.Now()
	sess := Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		EmployeeCode: employeeCode,
		CreatedAt:    now,
		ExpiresAt:    now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}

	token, err := m.signToken(sess)
	if err != nil {
		return Session{}, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sess, nil
}

// Resolve returns the session referenced by the request cookie, or
// ErrNotFound when the request carries no usable session.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return Session{}, ErrNotFound
	}

	id, err := m.verifyToken(cookie.Value)
	if err != nil {
		return Session{}, err
	}

	return m.store.Find(ctx, id)
}

// Destroy removes the session and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(m.cookieName)
	if err == nil {
		if id, verr := m.verifyToken(cookie.Value); verr == nil {
			if derr := m.store.Delete(ctx, id); derr != nil {
				return derr
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// SetFlash stores a one-shot notice on the session.
func (m *Manager) SetFlash(ctx context.Context, sess Session, message string) error {
	sess.Flash = message
	return m.store.Save(ctx, sess)
}

// PopFlash returns the pending flash message and clears it.
func (m *Manager) PopFlash(ctx context.Context, sess Session) (string, error) {
	if sess.Flash == "" {
		return "", nil
	}
	flash := sess.Flash
	sess.Flash = ""
	if err := m.store.Save(ctx, sess); err != nil {
		return "", err
	}
	return flash, nil
}

func (m *Manager) signToken(sess Session) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sess.ID,
		IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (m *Manager) verifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
