package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

const specialColumns = `id, name, description, price, image_url, is_active,
	starts_on::text, ends_on::text, created_at, updated_at`

func scanSpecial(s interface{ Scan(...interface{}) error }) (models.SeasonalSpecial, error) {
	var sp models.SeasonalSpecial
	err := s.Scan(
		&sp.ID, &sp.Name, &sp.Description, &sp.Price, &sp.ImageURL, &sp.IsActive,
		&sp.StartsOn, &sp.EndsOn, &sp.CreatedAt, &sp.UpdatedAt,
	)
	return sp, err
}

// ListSeasonalSpecials returns all specials, newest first. activeOnly
// restricts to specials that are flagged active and inside their date
// range, for the public site.
func (d *DatabaseClient) ListSeasonalSpecials(activeOnly bool) ([]models.SeasonalSpecial, error) {
	query := `SELECT ` + specialColumns + ` FROM seasonal_specials`
	if activeOnly {
		query += `
		WHERE is_active = true
		  AND (starts_on IS NULL OR starts_on <= CURRENT_DATE)
		  AND (ends_on IS NULL OR ends_on >= CURRENT_DATE)`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasonal specials: %w", err)
	}
	defer rows.Close()

	var specials []models.SeasonalSpecial
	for rows.Next() {
		sp, err := scanSpecial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seasonal special: %w", err)
		}
		specials = append(specials, sp)
	}
	return specials, rows.Err()
}

func (d *DatabaseClient) CreateSeasonalSpecial(in models.SeasonalSpecialInput) (*models.SeasonalSpecial, error) {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	row := d.db.QueryRow(`
		INSERT INTO seasonal_specials (name, description, price, image_url, is_active, starts_on, ends_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+specialColumns+`
	`, in.Name, in.Description, in.Price, in.ImageURL, active, in.StartsOn, in.EndsOn)
	sp, err := scanSpecial(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create seasonal special: %w", err)
	}
	return &sp, nil
}

func (d *DatabaseClient) UpdateSeasonalSpecial(id uuid.UUID, in models.SeasonalSpecialInput) (*models.SeasonalSpecial, error) {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	row := d.db.QueryRow(`
		UPDATE seasonal_specials
		SET name = $2, description = $3, price = $4, image_url = $5,
		    is_active = $6, starts_on = $7, ends_on = $8, updated_at = now()
		WHERE id = $1
		RETURNING `+specialColumns+`
	`, id, in.Name, in.Description, in.Price, in.ImageURL, active, in.StartsOn, in.EndsOn)
	sp, err := scanSpecial(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update seasonal special: %w", err)
	}
	return &sp, nil
}

func (d *DatabaseClient) DeleteSeasonalSpecial(id uuid.UUID) error {
	_, err := d.db.Exec(`DELETE FROM seasonal_specials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete seasonal special: %w", err)
	}
	return nil
}
