package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/linkvaultapp/linkvault/middleware"
	"github.com/linkvaultapp/linkvault/models"
	"github.com/linkvaultapp/linkvault/store"
)

type ProfileHandler struct {
	profiles *store.ProfileStore
}

func NewProfileHandler(db *sql.DB) *ProfileHandler {
	return &ProfileHandler{profiles: store.NewProfileStore(db)}
}

// Update handles PUT /profile. Partial update: only supplied fields are
// written.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.SessionFrom(r)

	var req models.UpdateProfileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	profile, err := h.profiles.Update(claims.UserID(), req.Username, req.AvatarURL)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("profile updated", "user_id", profile.ID)

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// Username handles GET /users/{id}/username. Unknown identities resolve
// to "anonymous" rather than an error.
func (h *ProfileHandler) Username(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	username, err := h.profiles.Username(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UsernameResponse{Username: username})
}
