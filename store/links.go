package store

import (
	"database/sql"
	"fmt"
	neturl "net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linkvaultapp/linkvault/models"
)

// LinkStore is the repository service for links: listing with
// filter/sort, detail fetches with nested comments, submission, edits,
// deletion and vote mutation.
type LinkStore struct {
	db *sql.DB
}

func NewLinkStore(db *sql.DB) *LinkStore {
	return &LinkStore{db: db}
}

const linkColumns = `
	SELECT l.id, l.title, l.url, l.votes, l.user_id, p.username, l.created_at,
	       (SELECT COUNT(*) FROM comments c WHERE c.link_id = l.id)
	FROM links l
	JOIN profiles p ON p.id = l.user_id
`

// List returns links matching the given filters. A non-empty search
// term is matched case-insensitively against title, URL and tags; a
// non-empty tag filters by exact tag membership. Sorting is by vote
// count ("votes", the default) or creation time ("newest"), both
// descending with the link id as a stable tiebreak.
func (s *LinkStore) List(search, tag, sort string) ([]models.Link, error) {
	query := linkColumns
	var conds []string
	var args []any

	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		pattern := "%" + term + "%"
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(LOWER(l.title) LIKE $%d OR LOWER(l.url) LIKE $%d
				OR EXISTS (SELECT 1 FROM link_tags t WHERE t.link_id = l.id AND t.tag LIKE $%d))`,
			n+1, n+2, n+3))
		args = append(args, pattern, pattern, pattern)
	}

	if tag != "" {
		conds = append(conds, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM link_tags t WHERE t.link_id = l.id AND t.tag = $%d)`,
			len(args)+1))
		args = append(args, tag)
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	switch sort {
	case models.SortNewest:
		query += " ORDER BY l.created_at DESC, l.id"
	default:
		query += " ORDER BY l.votes DESC, l.id"
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	links := []models.Link{}
	for rows.Next() {
		var l models.Link
		if err := rows.Scan(&l.ID, &l.Title, &l.URL, &l.Votes, &l.UserID,
			&l.Username, &l.CreatedAt, &l.CommentCount); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		l.Tags = []string{}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}

	if err := s.loadTags(links); err != nil {
		return nil, err
	}

	return links, nil
}

// loadTags fills in the tag lists for a batch of links with a single
// query.
func (s *LinkStore) loadTags(links []models.Link) error {
	if len(links) == 0 {
		return nil
	}

	placeholders := make([]string, len(links))
	args := make([]any, len(links))
	index := make(map[string]int, len(links))
	for i := range links {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = links[i].ID
		index[links[i].ID] = i
	}

	rows, err := s.db.Query(
		`SELECT link_id, tag FROM link_tags
		 WHERE link_id IN (`+strings.Join(placeholders, ", ")+`)
		 ORDER BY link_id, position`, args...)
	if err != nil {
		return fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var linkID, tag string
		if err := rows.Scan(&linkID, &tag); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		if i, ok := index[linkID]; ok {
			links[i].Tags = append(links[i].Tags, tag)
		}
	}
	return rows.Err()
}

// Get fetches one link with its tags and full comment list, each
// comment's author resolved to a display name in the same join. Returns
// ErrNotFound for unknown ids.
func (s *LinkStore) Get(id string) (*models.Link, error) {
	var l models.Link
	err := s.db.QueryRow(linkColumns+" WHERE l.id = $1", id).Scan(
		&l.ID, &l.Title, &l.URL, &l.Votes, &l.UserID,
		&l.Username, &l.CreatedAt, &l.CommentCount,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query link: %w", err)
	}

	l.Tags = []string{}
	batch := []models.Link{l}
	if err := s.loadTags(batch); err != nil {
		return nil, err
	}
	l = batch[0]

	rows, err := s.db.Query(`
		SELECT c.id, c.link_id, c.user_id, p.username, c.text, c.created_at
		FROM comments c
		JOIN profiles p ON p.id = c.user_id
		WHERE c.link_id = $1
		ORDER BY c.created_at DESC, c.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	l.Comments = []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.LinkID, &c.UserID, &c.Username, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		l.Comments = append(l.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return &l, nil
}

// Create validates and stores a new link. The submitter's implicit
// upvote gives every link an initial vote count of 1.
func (s *LinkStore) Create(ownerID, title, url, rawTags string) (*models.Link, error) {
	title, url, err := validateLink(title, url)
	if err != nil {
		return nil, err
	}
	tags := NormalizeTags(rawTags)

	id := uuid.NewString()
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO links (id, title, url, votes, user_id, created_at)
		VALUES ($1, $2, $3, 1, $4, $5)
	`, id, title, url, ownerID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert link: %w", err)
	}

	if err := insertTags(tx, id, tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit link: %w", err)
	}

	return s.Get(id)
}

// Update rewrites a link's title, URL and tags. Only the owner or an
// admin may edit; input is re-validated exactly as on creation.
func (s *LinkStore) Update(id, callerID string, isAdmin bool, title, url, rawTags string) (*models.Link, error) {
	if err := s.authorize(id, callerID, isAdmin); err != nil {
		return nil, err
	}

	title, url, err := validateLink(title, url)
	if err != nil {
		return nil, err
	}
	tags := NormalizeTags(rawTags)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE links SET title = $1, url = $2 WHERE id = $3`, title, url, id); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM link_tags WHERE link_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to clear tags: %w", err)
	}
	if err := insertTags(tx, id, tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit link update: %w", err)
	}

	return s.Get(id)
}

// Delete removes a link. Only the owner or an admin may delete; tags
// and comments cascade at the store level.
func (s *LinkStore) Delete(id, callerID string, isAdmin bool) error {
	if err := s.authorize(id, callerID, isAdmin); err != nil {
		return err
	}

	if _, err := s.db.Exec(`DELETE FROM links WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

// Vote atomically adjusts a link's vote count by one. Downvotes are
// floored at zero; the count never goes negative.
func (s *LinkStore) Vote(id string, increment bool) (*models.Link, error) {
	var res sql.Result
	var err error
	if increment {
		res, err = s.db.Exec(`UPDATE links SET votes = votes + 1 WHERE id = $1`, id)
	} else {
		res, err = s.db.Exec(`
			UPDATE links
			SET votes = CASE WHEN votes > 0 THEN votes - 1 ELSE 0 END
			WHERE id = $1
		`, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check vote result: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	return s.Get(id)
}

// Tags returns the union of all tags across all links, alphabetically.
func (s *LinkStore) Tags() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT tag FROM link_tags ORDER BY tag`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// authorize checks that the caller owns the link or is an admin.
func (s *LinkStore) authorize(id, callerID string, isAdmin bool) error {
	var ownerID string
	err := s.db.QueryRow(`SELECT user_id FROM links WHERE id = $1`, id).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query link owner: %w", err)
	}

	if ownerID != callerID && !isAdmin {
		return ErrForbidden
	}
	return nil
}

func insertTags(tx *sql.Tx, linkID string, tags []string) error {
	for i, tag := range tags {
		if _, err := tx.Exec(`
			INSERT INTO link_tags (link_id, tag, position)
			VALUES ($1, $2, $3)
		`, linkID, tag, i); err != nil {
			return fmt.Errorf("failed to insert tag: %w", err)
		}
	}
	return nil
}

func validateLink(title, url string) (string, string, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)

	if title == "" {
		return "", "", validationf("title is required")
	}
	if url == "" {
		return "", "", validationf("url is required")
	}

	parsed, err := neturl.Parse(url)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", "", validationf("url must be a valid absolute URL")
	}

	return title, url, nil
}
