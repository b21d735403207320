/*
Package db handles database connections and schema creation.

# Drivers

Open selects a driver from the configured database type:

	conn, err := db.Open(cfg) // "sqlite" (modernc.org/sqlite) or "postgres" (lib/pq)

SQLite DSNs get foreign_keys(1) appended so ON DELETE CASCADE works, and
the pool is capped at one connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - profiles: Accounts (email, username, avatar, admin flag, password hash)
  - links: Submitted links with vote counters
  - link_tags: Lowercased tags per link, ordered by position
  - comments: Flat comment threads per link
  - admin_settings: Global key/value settings
  - password_resets: Single-use reset tokens

# Relationships

	profiles 1──* links
	profiles 1──* comments
	links    1──* link_tags
	links    1──* comments
	profiles 1──* password_resets

Deleting a link cascades to its tags and comments. The SQL stays inside
the dialect both drivers accept: $1 placeholders, no DB-side timestamp
defaults, no array columns.
*/
package db
