package supabase

import (
	"database/sql"
	"fmt"

	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

// GetSetting returns the value for a settings key, or "" when the key has
// never been set. Callers decide what the fallback is.
func (d *DatabaseClient) GetSetting(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`
		SELECT setting_value FROM business_settings WHERE setting_key = $1
	`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return value, nil
}

func (d *DatabaseClient) SetSetting(key, value string) (*models.BusinessSetting, error) {
	var setting models.BusinessSetting
	err := d.db.QueryRow(`
		INSERT INTO business_settings (setting_key, setting_value)
		VALUES ($1, $2)
		ON CONFLICT (setting_key) DO UPDATE
		SET setting_value = EXCLUDED.setting_value, updated_at = now()
		RETURNING setting_key, setting_value, updated_at
	`, key, value).Scan(&setting.SettingKey, &setting.SettingValue, &setting.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return &setting, nil
}

func (d *DatabaseClient) ListSettings() ([]models.BusinessSetting, error) {
	rows, err := d.db.Query(`
		SELECT setting_key, setting_value, updated_at
		FROM business_settings
		ORDER BY setting_key ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []models.BusinessSetting
	for rows.Next() {
		var s models.BusinessSetting
		if err := rows.Scan(&s.SettingKey, &s.SettingValue, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}
