package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/musicapi-dashboard/backend/internal/api/request"
	"github.com/musicapi-dashboard/backend/internal/api/response"
)

// AdminTokenHeader carries the shared secret for admin routes.
const AdminTokenHeader = "X-Admin-Token"

// AdminHandler handles the trusted bot-facing admin routes
type AdminHandler struct {
	alertRepo AlertStore
	token     string
}

// NewAdminHandler creates a new admin handler. An empty token leaves the
// admin routes open, matching the deployment where only the co-located
// bot can reach them.
func NewAdminHandler(alertRepo AlertStore, token string) *AdminHandler {
	return &AdminHandler{
		alertRepo: alertRepo,
		token:     token,
	}
}

// SetAlertRequest is the body of an alert update
type SetAlertRequest struct {
	Message string `json:"message"`
	Active  *bool  `json:"active"`
}

// SetAlertResponse confirms an alert update
type SetAlertResponse struct {
	Status string `json:"status"`
}

// RequireToken enforces the shared-secret header when a token is
// configured.
func (h *AdminHandler) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.token != "" {
			provided := r.Header.Get(AdminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(h.token)) != 1 {
				response.Unauthorized(w, "Invalid admin token")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// SetAlert handles POST /api/admin/set-alert. The singleton alert is
// created on first call and overwritten on every later one; replays are
// idempotent.
func (h *AdminHandler) SetAlert(w http.ResponseWriter, r *http.Request) {
	var req SetAlertRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	if err := h.alertRepo.Set(r.Context(), req.Message, active); err != nil {
		response.InternalError(w, "Failed to store alert")
		return
	}

	response.OK(w, SetAlertResponse{Status: "updated"})
}
