package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/linkvaultapp/linkvault/cliparse"
)

// Open connects to the configured database. SQLite connections get
// foreign-key enforcement turned on (required for comment and tag
// cascades) and a single-connection pool to avoid SQLITE_BUSY under
// concurrent writes.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		conn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	case "sqlite":
		dsn := cfg.DatabaseURL
		if !strings.Contains(dsn, "_pragma") {
			if strings.Contains(dsn, "?") {
				dsn += "&_pragma=foreign_keys(1)"
			} else {
				dsn += "?_pragma=foreign_keys(1)"
			}
		}
		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		conn.SetMaxOpenConns(1)
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}
}
