package middleware

import (
	"log/slog"
	"net/http"

	"github.com/sangamhr/kyc-portal/internal"
	"github.com/sangamhr/kyc-portal/internal/access"
	"github.com/sangamhr/kyc-portal/internal/auth"
	"github.com/sangamhr/kyc-portal/internal/session"
)

// Guards are the route preconditions of the access state machine. A rejected
// request gets an authorization-failure flash and a redirect to the login
// screen, matching the screen flow rather than a bare 403.
type Guards struct {
	manager *session.Manager
	logger  *slog.Logger
}

func NewGuards(manager *session.Manager, logger *slog.Logger) *Guards {
	return &Guards{manager: manager, logger: logger}
}

// RequireAdmin passes only authenticated administrators.
func (g *Guards) RequireAdmin(next http.Handler) http.Handler {
	return g.require(access.CanViewAdminDashboard, next)
}

// RequireSubmitted passes only authenticated users whose KYC form is in.
func (g *Guards) RequireSubmitted(next http.Handler) http.Handler {
	return g.require(access.CanViewUserDashboard, next)
}

// RequireAuthenticated passes any logged-in user.
func (g *Guards) RequireAuthenticated(next http.Handler) http.Handler {
	return g.require(func(f access.Flags) bool { return f.Authenticated }, next)
}

func (g *Guards) require(allowed func(access.Flags) bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())
		if allowed(identity.Flags()) {
			next.ServeHTTP(w, r)
			return
		}

		g.logger.Warn("guard rejected request", "path", r.URL.Path, "state", access.StateOf(identity.Flags()).String())
		g.RejectWithFlash(w, r, identity, internal.ErrNotAuthorized.Message)
	})
}

// RejectWithFlash records a user-facing error on the session (creating an
// anonymous one when needed) and redirects to the login screen.
func (g *Guards) RejectWithFlash(w http.ResponseWriter, r *http.Request, identity *auth.Identity, message string) {
	ctx := r.Context()

	sess := session.Session{}
	if identity != nil {
		sess = identity.Session
	}
	if sess.ID == "" {
		issued, err := g.manager.Issue(ctx, w, 0, "")
		if err != nil {
			g.logger.Error("failed to issue flash session", "error", err)
			http.Redirect(w, r, access.PathLogin, http.StatusFound)
			return
		}
		sess = issued
	}

	if err := g.manager.SetFlash(ctx, sess, message); err != nil {
		g.logger.Error("failed to set flash", "error", err)
	}
	http.Redirect(w, r, access.PathLogin, http.StatusFound)
}
