package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sangamhr/kyc-portal/internal"
	"github.com/sangamhr/kyc-portal/internal/auth"
	"github.com/sangamhr/kyc-portal/internal/session"
)

type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*auth.User, error)
}

// SessionMiddleware resolves the login cookie and attaches an Identity to the
// request context. The user row is re-read on every request so routing always
// sees the current kyc_submitted and is_admin flags, not a login-time
// snapshot. Requests without a usable session pass through anonymous.
func SessionMiddleware(manager *session.Manager, users UserLoader, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := manager.Resolve(r.Context(), r)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) && !errors.Is(err, session.ErrInvalidToken) {
					logger.Error("session resolve failed", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			identity := &auth.Identity{Session: sess}
			if sess.UserID != 0 {
				u, err := users.GetByID(r.Context(), sess.UserID)
				switch {
				case err == nil:
					identity.User = u
				case errors.Is(err, internal.ErrUserNotFound):
					// account deleted out of band; treat as anonymous
					logger.Warn("session user no longer exists", "user_id", sess.UserID)
				default:
					logger.Error("session user lookup failed", "user_id", sess.UserID, "error", err)
				}
			}

			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
