package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

const menuItemColumns = `id, category, name, description, price, is_available, display_order,
	created_at, updated_at`

func scanMenuItem(s interface{ Scan(...interface{}) error }) (models.MenuItem, error) {
	var m models.MenuItem
	err := s.Scan(
		&m.ID, &m.Category, &m.Name, &m.Description, &m.Price, &m.IsAvailable,
		&m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// ListMenuItems returns all items in display order. Category narrows the
// listing when non-empty; availableOnly hides unavailable items for the
// public menu.
func (d *DatabaseClient) ListMenuItems(category string, availableOnly bool) ([]models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items`
	var conds []string
	args := []interface{}{}
	if category != "" {
		args = append(args, category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if availableOnly {
		conds = append(conds, "is_available = true")
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += ` ORDER BY display_order ASC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (d *DatabaseClient) CreateMenuItem(in models.MenuItemInput) (*models.MenuItem, error) {
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	row := d.db.QueryRow(`
		INSERT INTO menu_items (category, name, description, price, is_available, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+menuItemColumns+`
	`, in.Category, in.Name, in.Description, in.Price, available, in.DisplayOrder)
	m, err := scanMenuItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return &m, nil
}

func (d *DatabaseClient) UpdateMenuItem(id uuid.UUID, in models.MenuItemInput) (*models.MenuItem, error) {
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	row := d.db.QueryRow(`
		UPDATE menu_items
		SET category = $2, name = $3, description = $4, price = $5,
		    is_available = $6, display_order = $7, updated_at = now()
		WHERE id = $1
		RETURNING `+menuItemColumns+`
	`, id, in.Category, in.Name, in.Description, in.Price, available, in.DisplayOrder)
	m, err := scanMenuItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return &m, nil
}

func (d *DatabaseClient) SetMenuItemAvailability(id uuid.UUID, available bool) error {
	res, err := d.db.Exec(`
		UPDATE menu_items
		SET is_available = $2, updated_at = now()
		WHERE id = $1
	`, id, available)
	if err != nil {
		return fmt.Errorf("failed to update menu item availability: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (d *DatabaseClient) DeleteMenuItem(id uuid.UUID) error {
	_, err := d.db.Exec(`DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}
