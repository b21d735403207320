package models

import "time"

// Sort key constants
const (
	SortVotes  = "votes"
	SortNewest = "newest"
)

// DefaultTag is substituted when a link is submitted without any tags.
const DefaultTag = "uncategorized"

// AdvertisementKey is the admin setting holding the sponsored sidebar HTML.
const AdvertisementKey = "advertisement_content"

// Request types

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Only supplied fields are written; nil means "leave unchanged".
type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Tags is the raw comma-separated form input; the store normalizes it.
type CreateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Tags  string `json:"tags"`
}

type UpdateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Tags  string `json:"tags"`
}

type VoteRequest struct {
	Increment bool `json:"increment"`
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

type UpsertSettingRequest struct {
	Value string `json:"value"`
}

// Response types

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      Profile   `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UsernameResponse struct {
	Username string `json:"username"`
}

type TagsResponse struct {
	Tags []string `json:"tags"`
}

// Domain types

type Link struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Votes        int       `json:"votes"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
	Tags         []string  `json:"tags"`
	CommentCount int       `json:"comment_count"`
	Comments     []Comment `json:"comments,omitempty"`
}

type Comment struct {
	ID        string    `json:"id"`
	LinkID    string    `json:"link_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentComment is a Comment annotated with its parent link's title for
// sidebar rendering.
type RecentComment struct {
	Comment
	LinkTitle string `json:"link_title"`
}

type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`

	PasswordHash string `json:"-"` // Never expose in JSON
}

type AdminSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
