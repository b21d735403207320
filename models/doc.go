/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignUpRequest: email, password, username
  - LoginRequest: email, password
  - ResetPasswordRequest / ResetPasswordConfirmRequest
  - UpdateProfileRequest: partial username/avatar_url update
  - CreateLinkRequest / UpdateLinkRequest: title, url, comma-separated tags
  - VoteRequest: increment (true = upvote, false = downvote)
  - AddCommentRequest: text
  - UpsertSettingRequest: value

# Response Types

Types for JSON responses:

  - AuthResponse: token, expires_at, user
  - MessageResponse: message
  - UsernameResponse: username
  - TagsResponse: tags
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Link: submitted link with votes, tags, comment count and (on detail
    fetches) the full comment list
  - Comment: flat comment under a link, author resolved to a username
  - RecentComment: Comment plus parent link title
  - Profile: account record; password hash is never serialized
  - AdminSetting: global key/value pair

# Constants

Sort keys:

	SortVotes  = "votes"
	SortNewest = "newest"

Defaults:

	DefaultTag       = "uncategorized"
	AdvertisementKey = "advertisement_content"
*/
package models
