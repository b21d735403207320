package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/linkvaultapp/linkvault/auth"
	"github.com/linkvaultapp/linkvault/cliparse"
	"github.com/linkvaultapp/linkvault/db"
)

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second connection would see a different empty :memory: database
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseType:  "sqlite",
		DatabaseURL:   ":memory:",
		BaseURL:       "http://localhost:3318",
		SessionSecret: "test-session-secret",
		SessionTTL:    time.Hour,
	}
}

// CreateTestUser inserts a profile with the given password and returns
// its ID
func CreateTestUser(t *testing.T, conn *sql.DB, email, username, password string, isAdmin bool) string {
	t.Helper()

	userID := uuid.NewString()
	hash := ""
	if password != "" {
		var err error
		hash, err = auth.HashPassword(password)
		if err != nil {
			t.Fatalf("Failed to hash test password: %v", err)
		}
	}

	_, err := conn.Exec(`
		INSERT INTO profiles (id, email, username, avatar_url, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, '', $4, $5, $6)
	`, userID, email, username, hash, isAdmin, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestLink inserts a link with tags and returns its ID. createdAt
// lets tests control the "newest" sort order.
func CreateTestLink(t *testing.T, conn *sql.DB, userID, title, url string, votes int, tags []string, createdAt time.Time) string {
	t.Helper()

	linkID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO links (id, title, url, votes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, linkID, title, url, votes, userID, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test link: %v", err)
	}

	for i, tag := range tags {
		_, err := conn.Exec(`
			INSERT INTO link_tags (link_id, tag, position)
			VALUES ($1, $2, $3)
		`, linkID, tag, i)
		if err != nil {
			t.Fatalf("Failed to create test tag: %v", err)
		}
	}

	return linkID
}

// CreateTestComment inserts a comment and returns its ID
func CreateTestComment(t *testing.T, conn *sql.DB, linkID, userID, text string, createdAt time.Time) string {
	t.Helper()

	commentID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO comments (id, link_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, commentID, linkID, userID, text, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return commentID
}

// TokenFor issues a session token for the given user
func TokenFor(t *testing.T, cfg cliparse.Config, userID string, admin bool) string {
	t.Helper()

	signed, _, err := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL).Issue(userID, admin)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}

	return signed
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeader builds the Authorization header map for a bearer token
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
