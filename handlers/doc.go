/*
Package handlers contains HTTP request handlers for the LinkVault API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - LinkHandler: Listing, detail, submission, edits, votes, tags
  - CommentHandler: Comment creation and recent activity
  - AuthHandler: Sign-up, login, logout, session info, password resets
  - SocialHandler: OAuth 2.0 social sign-in (google, github)
  - ProfileHandler: Profile updates and username resolution
  - AdminHandler: Global settings (sponsored content)

Handlers are created via constructor functions that accept *sql.DB (and
Config where secrets are needed):

	linkHandler := handlers.NewLinkHandler(db)
	authHandler := handlers.NewAuthHandler(db, cfg)

# Browsing and Mutation

	GET    /links               → List (query, tag, sort filters)
	GET    /links/{id}          → Get (with nested comments)
	POST   /links               → Create (votes start at 1)
	PUT    /links/{id}          → Update (owner or admin)
	DELETE /links/{id}          → Delete (owner or admin, cascades)
	POST   /links/{id}/vote     → Vote (±1, floored at zero)
	GET    /tags                → Tags
	POST   /links/{id}/comments → Add comment
	GET    /comments/recent     → Recent comments (default 5)

Mutations require "Authorization: Bearer <token>"; handlers behind
middleware.RequireUser can assume a session is present on the context.

# Sessions

	POST /auth/signup                  → account + session token
	POST /auth/login                   → session token
	POST /auth/logout                  → acknowledgment (stateless tokens)
	GET  /auth/me                      → current profile
	POST /auth/reset-password          → always succeeds (non-leaking)
	POST /auth/reset-password/confirm  → consume token, set password
	GET  /auth/social/{provider}       → redirect to provider
	GET  /auth/social/{provider}/callback

# Errors

Handlers translate the store's error taxonomy via writeStoreError:
validation → 400, unauthenticated → 401, not owner/admin → 403,
absent → 404, duplicate email → 409, anything else → 500 with a logged
diagnostic. Responses use the models.ErrorResponse envelope.
*/
package handlers
