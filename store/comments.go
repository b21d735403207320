package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linkvaultapp/linkvault/models"
)

// DefaultRecentLimit is how many comments the recent-activity sidebar
// shows when the caller doesn't ask for a specific count.
const DefaultRecentLimit = 5

const maxRecentLimit = 50

// CommentStore is the repository service for comments. Comments are
// immutable once created and disappear with their parent link.
type CommentStore struct {
	db *sql.DB
}

func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

// Add appends a comment under a link. Text must be non-empty after
// trimming; the parent link must exist.
func (s *CommentStore) Add(linkID, authorID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationf("comment text is required")
	}

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM links WHERE id = $1)`, linkID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check link: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	c := models.Comment{
		ID:        uuid.NewString(),
		LinkID:    linkID,
		UserID:    authorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(`
		INSERT INTO comments (id, link_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.LinkID, c.UserID, c.Text, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	// Resolve the author's display name for the response
	err = s.db.QueryRow(`SELECT username FROM profiles WHERE id = $1`, authorID).Scan(&c.Username)
	if err == sql.ErrNoRows {
		c.Username = AnonymousName
	} else if err != nil {
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}

	return &c, nil
}

// Recent returns the globally newest comments across all links, each
// annotated with the author's display name and the parent link.
func (s *CommentStore) Recent(limit int) ([]models.RecentComment, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	rows, err := s.db.Query(`
		SELECT c.id, c.link_id, c.user_id, p.username, c.text, c.created_at, l.title
		FROM comments c
		JOIN links l ON l.id = c.link_id
		JOIN profiles p ON p.id = c.user_id
		ORDER BY c.created_at DESC, c.id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent comments: %w", err)
	}
	defer rows.Close()

	comments := []models.RecentComment{}
	for rows.Next() {
		var c models.RecentComment
		if err := rows.Scan(&c.ID, &c.LinkID, &c.UserID, &c.Username, &c.Text, &c.CreatedAt, &c.LinkTitle); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
