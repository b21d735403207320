package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/linkvaultapp/linkvault/middleware"
	"github.com/linkvaultapp/linkvault/models"
	"github.com/linkvaultapp/linkvault/store"
)

type CommentHandler struct {
	comments *store.CommentStore
}

func NewCommentHandler(db *sql.DB) *CommentHandler {
	return &CommentHandler{comments: store.NewCommentStore(db)}
}

// Add handles POST /links/{id}/comments
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	linkID := r.PathValue("id")
	if linkID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "link id is required")
		return
	}
	claims, _ := middleware.SessionFrom(r)

	var req models.AddCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	comment, err := h.comments.Add(linkID, claims.UserID(), req.Text)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("comment added", "link_id", linkID, "comment_id", comment.ID)

	middleware.JSONResponse(w, http.StatusCreated, comment)
}

// Recent handles GET /comments/recent?limit=
func (h *CommentHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := store.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	comments, err := h.comments.Recent(limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, comments)
}
