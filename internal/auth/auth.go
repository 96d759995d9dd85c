package auth

import (
	"context"

	"github.com/sangamhr/kyc-portal/internal/access"
	"github.com/sangamhr/kyc-portal/internal/session"
)

type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (*User, error)
	HashPassword(password string) (string, error)
}

// Identity is what the session middleware attaches to the request context:
// the resolved session plus a fresh read of the user row.
type Identity struct {
	Session session.Session
	User    *User
}

// Flags maps the identity onto the access state machine input.
func (i *Identity) Flags() access.Flags {
	if i == nil || i.User == nil {
		return access.Flags{}
	}
	return access.Flags{
		Authenticated: true,
		IsAdmin:       i.User.IsAdmin,
		KYCSubmitted:  i.User.KYCSubmitted,
	}
}

type ctxKey string

const contextIdentityKey ctxKey = "identity"

func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, contextIdentityKey, identity)
}

// IdentityFromContext returns the authenticated identity, if any. A flash-only
// anonymous session yields an Identity with a nil User.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(contextIdentityKey).(*Identity)
	return identity, ok
}
