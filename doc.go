/*
Package main provides the entry point for the LinkVault API server.

LinkVault is a link-sharing and discussion service: users submit links,
vote them up or down, tag them for browsing, and comment on them. Admins
moderate links and manage global settings such as the sidebar sponsored
content.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=links.db SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - SESSION_SECRET (-session-secret): Secret for signing session tokens

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - BASE_URL (-base-url): Public base URL used in reset links and OAuth
    callbacks
  - GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET: Enable Google social login
  - GITHUB_CLIENT_ID / GITHUB_CLIENT_SECRET: Enable GitHub social login

# Admin Promotion

The admin flag is never self-service. Promote an existing account and
exit:

	go run main.go -d links.db -session-secret ... -promote user@example.com

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (links, comments, auth, profile, admin)
  - store: repository services over *sql.DB (links, comments, profiles, settings)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, session resolution
  - models: Request/response and domain types
  - auth: Password hashing and session tokens
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
