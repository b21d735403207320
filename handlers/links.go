package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/linkvaultapp/linkvault/middleware"
	"github.com/linkvaultapp/linkvault/models"
	"github.com/linkvaultapp/linkvault/store"
)

type LinkHandler struct {
	links *store.LinkStore
}

func NewLinkHandler(db *sql.DB) *LinkHandler {
	return &LinkHandler{links: store.NewLinkStore(db)}
}

// List handles GET /links?query=&tag=&sort=
func (h *LinkHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	tag := r.URL.Query().Get("tag")
	sort := r.URL.Query().Get("sort")
	if sort == "" {
		sort = models.SortVotes
	}
	if sort != models.SortVotes && sort != models.SortNewest {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sort must be \"votes\" or \"newest\"")
		return
	}

	links, err := h.links.List(query, tag, sort)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, links)
}

// Get handles GET /links/{id}
func (h *LinkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "link id is required")
		return
	}

	link, err := h.links.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, link)
}

// Create handles POST /links
func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.SessionFrom(r)

	var req models.CreateLinkRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	link, err := h.links.Create(claims.UserID(), req.Title, req.URL, req.Tags)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("link created", "link_id", link.ID, "user_id", link.UserID)

	middleware.JSONResponse(w, http.StatusCreated, link)
}

// Update handles PUT /links/{id}
func (h *LinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "link id is required")
		return
	}
	claims, _ := middleware.SessionFrom(r)

	var req models.UpdateLinkRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	link, err := h.links.Update(id, claims.UserID(), claims.Admin, req.Title, req.URL, req.Tags)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("link updated", "link_id", id, "user_id", claims.UserID())

	middleware.JSONResponse(w, http.StatusOK, link)
}

// Delete handles DELETE /links/{id}
func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "link id is required")
		return
	}
	claims, _ := middleware.SessionFrom(r)

	if err := h.links.Delete(id, claims.UserID(), claims.Admin); err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("link deleted", "link_id", id, "user_id", claims.UserID())

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Link deleted successfully"})
}

// Vote handles POST /links/{id}/vote
func (h *LinkHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "link id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// The updated link is returned so the client can mirror the
	// server's count rather than guessing.
	link, err := h.links.Vote(id, req.Increment)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, link)
}

// Tags handles GET /tags
func (h *LinkHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.links.Tags()
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TagsResponse{Tags: tags})
}
