package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linkvaultapp/linkvault/auth"
	"github.com/linkvaultapp/linkvault/models"
)

const (
	maxUsernameLength = 50

	resetTokenTTL = time.Hour
)

// AnonymousName is the display-name fallback for unresolved identities.
const AnonymousName = "anonymous"

// ProfileStore is the identity side of the application: account
// creation, credential checks, display-name resolution and profile
// updates. The admin flag is read-only here; promotion happens through
// Promote, which is only reachable from the maintenance CLI path.
type ProfileStore struct {
	db *sql.DB
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Create registers a new password-based account. The username defaults
// to the email's local part when omitted.
func (s *ProfileStore) Create(email, password, username string) (*models.Profile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < auth.MinPasswordLength {
		return nil, validationf("password should be at least %d characters", auth.MinPasswordLength)
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = email[:strings.Index(email, "@")]
	}
	if len(username) > maxUsernameLength {
		return nil, validationf("username must be at most %d characters", maxUsernameLength)
	}

	var exists bool
	if err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM profiles WHERE email = $1)`, email).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p := models.Profile{
		ID:        uuid.NewString(),
		Email:     email,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(`
		INSERT INTO profiles (id, email, username, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)
	`, p.ID, p.Email, p.Username, hash, p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	return &p, nil
}

// Authenticate checks email/password credentials. Unknown accounts and
// wrong passwords both yield ErrInvalidCredentials so responses can't
// be used to probe for accounts.
func (s *ProfileStore) Authenticate(email, password string) (*models.Profile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	p, err := s.getByEmail(email)
	if err == ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.VerifyPassword(p.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return p, nil
}

// EnsureSocial finds or provisions the account backing a social login.
// Provisioned accounts carry no password hash and can only sign in via
// their provider.
func (s *ProfileStore) EnsureSocial(email, username string) (*models.Profile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	p, err := s.getByEmail(email)
	if err == nil {
		return p, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = email[:strings.Index(email, "@")]
	}

	created := models.Profile{
		ID:        uuid.NewString(),
		Email:     email,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.Exec(`
		INSERT INTO profiles (id, email, username, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, '', FALSE, $4)
	`, created.ID, created.Email, created.Username, created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert social profile: %w", err)
	}
	return &created, nil
}

// GetByID fetches a profile by id.
func (s *ProfileStore) GetByID(id string) (*models.Profile, error) {
	return s.get(`WHERE id = $1`, id)
}

func (s *ProfileStore) getByEmail(email string) (*models.Profile, error) {
	return s.get(`WHERE email = $1`, email)
}

func (s *ProfileStore) get(where string, arg any) (*models.Profile, error) {
	var p models.Profile
	err := s.db.QueryRow(`
		SELECT id, email, username, avatar_url, password_hash, is_admin, created_at
		FROM profiles `+where, arg).Scan(
		&p.ID, &p.Email, &p.Username, &p.AvatarURL, &p.PasswordHash, &p.IsAdmin, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	return &p, nil
}

// Username resolves a display name for a raw identity, falling back to
// "anonymous" when the identity is unknown.
func (s *ProfileStore) Username(id string) (string, error) {
	var username string
	err := s.db.QueryRow(`SELECT username FROM profiles WHERE id = $1`, id).Scan(&username)
	if err == sql.ErrNoRows {
		return AnonymousName, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve username: %w", err)
	}
	return username, nil
}

// Update applies a partial profile update: only supplied fields are
// written.
func (s *ProfileStore) Update(id string, username, avatarURL *string) (*models.Profile, error) {
	if username == nil && avatarURL == nil {
		return nil, validationf("no fields to update")
	}

	var sets []string
	var args []any

	if username != nil {
		name := strings.TrimSpace(*username)
		if name == "" {
			return nil, validationf("username cannot be empty")
		}
		if len(name) > maxUsernameLength {
			return nil, validationf("username must be at most %d characters", maxUsernameLength)
		}
		sets = append(sets, fmt.Sprintf("username = $%d", len(args)+1))
		args = append(args, name)
	}
	if avatarURL != nil {
		sets = append(sets, fmt.Sprintf("avatar_url = $%d", len(args)+1))
		args = append(args, *avatarURL)
	}

	args = append(args, id)
	res, err := s.db.Exec(
		fmt.Sprintf(`UPDATE profiles SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(id)
}

// Promote grants the admin flag to the account with the given email.
// Never exposed over HTTP.
func (s *ProfileStore) Promote(email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(`UPDATE profiles SET is_admin = TRUE WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("failed to promote account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check promotion result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateReset issues a password-reset token for the account with the
// given email. When no such account exists it returns an empty token
// and no error, so callers cannot distinguish the two cases.
func (s *ProfileStore) CreateReset(email string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}

	p, err := s.getByEmail(email)
	if err == ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	token, err := auth.GenerateID(24)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(`
		INSERT INTO password_resets (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`, token, p.ID, now.Add(resetTokenTTL), now)
	if err != nil {
		return "", fmt.Errorf("failed to insert reset token: %w", err)
	}

	return token, nil
}

// ResetPassword consumes a reset token and sets a new password.
func (s *ProfileStore) ResetPassword(token, password string) error {
	if len(password) < auth.MinPasswordLength {
		return validationf("password should be at least %d characters", auth.MinPasswordLength)
	}

	var userID string
	var expiresAt time.Time
	err := s.db.QueryRow(`
		SELECT user_id, expires_at FROM password_resets WHERE token = $1
	`, token).Scan(&userID, &expiresAt)
	if err == sql.ErrNoRows {
		return validationf("invalid or expired reset token")
	}
	if err != nil {
		return fmt.Errorf("failed to query reset token: %w", err)
	}

	if time.Now().UTC().After(expiresAt) {
		_, _ = s.db.Exec(`DELETE FROM password_resets WHERE token = $1`, token)
		return validationf("invalid or expired reset token")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE profiles SET password_hash = $1 WHERE id = $2`, hash, userID); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM password_resets WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	return tx.Commit()
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", validationf("a valid email address is required")
	}
	return email, nil
}
