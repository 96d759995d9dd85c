package auth

import (
	"errors"
	"net/http"

	"github.com/sangamhr/kyc-portal/internal"
	"github.com/sangamhr/kyc-portal/internal/access"
	"github.com/sangamhr/kyc-portal/internal/session"
	"github.com/sangamhr/kyc-portal/internal/transport"
	"github.com/sangamhr/kyc-portal/internal/transport/view"
	"github.com/sangamhr/kyc-portal/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service  ServiceAPI
	Sessions *session.Manager
	Views    *view.Renderer
}

func NewHandler(svc ServiceAPI, sessions *session.Manager, views *view.Renderer) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
		Sessions:    sessions,
		Views:       views,
	}
}

// ShowLogin handles GET /login, surfacing the most recent flash if any.
func (h *Handler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	var message string
	if identity, ok := IdentityFromContext(r.Context()); ok && identity != nil {
		flash, err := h.Sessions.PopFlash(r.Context(), identity.Session)
		if err != nil {
			h.Logger.Error("failed to pop flash", "error", err)
		}
		message = flash
	}

	if err := h.Views.Render(w, "login.html", view.LoginData{Message: message}); err != nil {
		h.Logger.Error("failed to render login page", "error", err)
	}
}

// Login handles POST /login. On success a fresh session is issued and the
// user lands wherever the access state machine routes them.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	dto := LoginDTOFromForm(r.PostForm)
	u, err := h.Service.Authenticate(r.Context(), dto)
	if err != nil {
		h.rejectLogin(w, r, err)
		return
	}

	// fresh session ID on every login
	if err := h.Sessions.Destroy(r.Context(), w, r); err != nil {
		h.Logger.Error("failed to drop previous session", "error", err)
	}
	if _, err := h.Sessions.Issue(r.Context(), w, u.ID, u.EmployeeCode); err != nil {
		h.Logger.Error("failed to issue session", "employee_code", u.EmployeeCode, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	state := access.StateOf(access.Flags{
		Authenticated: true,
		IsAdmin:       u.IsAdmin,
		KYCSubmitted:  u.KYCSubmitted,
	})
	h.Redirect(w, r, state.Destination())
}

// Logout handles GET /logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(r.Context(), w, r); err != nil {
		h.Logger.Error("failed to destroy session", "error", err)
	}
	h.Redirect(w, r, access.PathLogin)
}

// Root handles GET /: the pure dispatch of the access state machine.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())
	h.Redirect(w, r, access.StateOf(identity.Flags()).Destination())
}

// rejectLogin maps an authentication failure onto a flash + redirect, and
// anything else onto a generic server error.
func (h *Handler) rejectLogin(w http.ResponseWriter, r *http.Request, err error) {
	var message string

	var vErr ValidationError
	appErr, isApp := internal.IsAppError(err)
	switch {
	case errors.As(err, &vErr):
		message = vErr.Msg
	case isApp && appErr.Type == internal.ErrorTypeAuthentication:
		message = appErr.Message
	default:
		h.Logger.Error("login failed with store error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Logger.Warn("login rejected", "reason", message)

	ctx := r.Context()
	sess := session.Session{}
	if identity, ok := IdentityFromContext(ctx); ok && identity != nil {
		sess = identity.Session
	}
	if sess.ID == "" {
		issued, ierr := h.Sessions.Issue(ctx, w, 0, "")
		if ierr != nil {
			h.Logger.Error("failed to issue flash session", "error", ierr)
			h.Redirect(w, r, access.PathLogin)
			return
		}
		sess = issued
	}
	if ferr := h.Sessions.SetFlash(ctx, sess, message); ferr != nil {
		h.Logger.Error("failed to set flash", "error", ferr)
	}
	h.Redirect(w, r, access.PathLogin)
}
