package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/linkvaultapp/linkvault/middleware"
	"github.com/linkvaultapp/linkvault/models"
	"github.com/linkvaultapp/linkvault/store"
)

type AdminHandler struct {
	settings *store.SettingStore
}

func NewAdminHandler(db *sql.DB) *AdminHandler {
	return &AdminHandler{settings: store.NewSettingStore(db)}
}

// GetSetting handles GET /admin/settings/{key}. Settings are globally
// readable (the sidebar fetches the sponsored content without a
// session); only writes are restricted.
func (h *AdminHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "setting key is required")
		return
	}

	setting, err := h.settings.Get(key)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, setting)
}

// PutSetting handles PUT /admin/settings/{key}, admin only. Values are
// trusted admin-authored content; they must never be sourced from end
// users.
func (h *AdminHandler) PutSetting(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.SessionFrom(r)
	if !claims.Admin {
		middleware.ErrorResponse(w, http.StatusForbidden, "You don't have permission to access this page")
		return
	}

	key := r.PathValue("key")
	if key == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "setting key is required")
		return
	}

	var req models.UpsertSettingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	setting, err := h.settings.Upsert(key, req.Value)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("admin setting updated", "key", key, "user_id", claims.UserID())

	middleware.JSONResponse(w, http.StatusOK, setting)
}
