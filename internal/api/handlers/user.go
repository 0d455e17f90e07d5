package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/musicapi-dashboard/backend/internal/api/request"
	"github.com/musicapi-dashboard/backend/internal/api/response"
	"github.com/musicapi-dashboard/backend/internal/repository"
)

// UserHandler handles key toggling and profile updates
type UserHandler struct {
	userRepo UserStore
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo UserStore) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// ToggleResponse reports the key state after a toggle
type ToggleResponse struct {
	Status int  `json:"status"`
	Active bool `json:"active"`
}

// UpdateProfileRequest is the body of a profile update
type UpdateProfileRequest struct {
	Key      string `json:"key"`
	Username string `json:"username"`
}

// UpdateProfileResponse confirms a profile update
type UpdateProfileResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Toggle handles GET /api/user/toggle. Any action other than exactly
// "on" turns the key off; repeating the same action is a no-op.
func (h *UserHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := request.GetQueryString(r, "key", "")
	action := request.GetQueryString(r, "action", "")

	if _, err := h.userRepo.GetByKey(ctx, key); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.InvalidKey(w)
			return
		}
		response.InternalError(w, "Failed to load user")
		return
	}

	active := action == "on"
	if err := h.userRepo.SetActive(ctx, key, active); err != nil {
		response.InternalError(w, "Failed to update key state")
		return
	}

	response.OK(w, ToggleResponse{Status: 200, Active: active})
}

// UpdateProfile handles POST /api/user/update_profile. The update is
// unconditional: a key that matches nothing is a silent no-op, still
// reported as success.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Key) == "" || strings.TrimSpace(req.Username) == "" {
		response.BadRequest(w, "key and username are required")
		return
	}

	if err := h.userRepo.UpdateUsername(r.Context(), req.Key, req.Username); err != nil {
		response.InternalError(w, "Failed to update profile")
		return
	}

	response.OK(w, UpdateProfileResponse{Status: 200, Message: "Profile updated"})
}
