/*
Package store implements the repository services over *sql.DB.

# Stores

Each store is created from a database handle:

	links := store.NewLinkStore(db)
	comments := store.NewCommentStore(db)
	profiles := store.NewProfileStore(db)
	settings := store.NewSettingStore(db)

  - LinkStore: list/filter/sort, detail with nested comments, create,
    edit, delete, vote mutation, tag enumeration
  - CommentStore: append comments, list recent activity
  - ProfileStore: accounts, credentials, display names, password resets
  - SettingStore: global key/value settings (admin-written)

# Error Taxonomy

All stores share one result-or-error convention:

  - ErrNotFound: absent record (handlers map to 404)
  - ErrForbidden: caller is neither owner nor admin (403)
  - ErrDuplicateEmail: sign-up against an existing account (409)
  - ErrInvalidCredentials: failed login (401)
  - *ValidationError: rejected input (400); check with store.IsValidation

Anything else wraps a driver failure and surfaces as a 500.

# Contracts

Vote counts are floor-clamped at zero and start at 1 (the submitter's
implicit upvote). Tag input is normalized by NormalizeTags: trimmed,
lowercased, de-duplicated, defaulting to "uncategorized". List ordering
is stable: votes or creation time descending, then link id.

Display names are resolved with joins against profiles rather than
per-record lookups, so a detail fetch with N comments stays at a fixed
number of queries.
*/
package store
