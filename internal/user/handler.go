package user

import (
	"errors"
	"net/http"

	"github.com/sangamhr/kyc-portal/internal"
	"github.com/sangamhr/kyc-portal/internal/auth"
	"github.com/sangamhr/kyc-portal/internal/transport"
	"github.com/sangamhr/kyc-portal/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

// UserDetails handles GET /user-details: the session's own user row as JSON.
// The requester can never read anyone else's row.
func (h *Handler) UserDetails(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity == nil || identity.User == nil {
		h.WriteError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	u, err := h.Service.GetByID(r.Context(), identity.User.ID)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			h.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}
