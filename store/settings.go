package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/linkvaultapp/linkvault/models"
)

// SettingStore holds global key/value settings with upsert-by-key
// semantics. Values are globally readable but only admins may write
// them; the handler layer enforces that. Values are trusted
// admin-authored content (e.g. the sponsored sidebar HTML) and must
// never be sourced from end users.
type SettingStore struct {
	db *sql.DB
}

func NewSettingStore(db *sql.DB) *SettingStore {
	return &SettingStore{db: db}
}

// Get fetches one setting by key. Unset keys yield ErrNotFound.
func (s *SettingStore) Get(key string) (*models.AdminSetting, error) {
	var setting models.AdminSetting
	err := s.db.QueryRow(`
		SELECT key, value, updated_at FROM admin_settings WHERE key = $1
	`, key).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query setting: %w", err)
	}
	return &setting, nil
}

// Upsert writes a setting, replacing any previous value for the key.
func (s *SettingStore) Upsert(key, value string) (*models.AdminSetting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, validationf("setting key is required")
	}

	setting := models.AdminSetting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(`
		INSERT INTO admin_settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, setting.Key, setting.Value, setting.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return &setting, nil
}
