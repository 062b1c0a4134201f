package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

func (d *DatabaseClient) ListInventoryItems() ([]models.InventoryItem, error) {
	rows, err := d.db.Query(`
		SELECT id, item_name, is_checked, priority, notes, created_at, updated_at
		FROM inventory_checklist
		ORDER BY is_checked ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var it models.InventoryItem
		err := rows.Scan(&it.ID, &it.ItemName, &it.IsChecked, &it.Priority, &it.Notes,
			&it.CreatedAt, &it.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// AddInventoryItem inserts a checklist entry. New items always start
// unchecked.
func (d *DatabaseClient) AddInventoryItem(in models.InventoryItemInput) (*models.InventoryItem, error) {
	var it models.InventoryItem
	err := d.db.QueryRow(`
		INSERT INTO inventory_checklist (item_name, is_checked, priority, notes)
		VALUES ($1, false, $2, $3)
		RETURNING id, item_name, is_checked, priority, notes, created_at, updated_at
	`, in.ItemName, in.Priority, in.Notes).Scan(
		&it.ID, &it.ItemName, &it.IsChecked, &it.Priority, &it.Notes, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add inventory item: %w", err)
	}
	return &it, nil
}

func (d *DatabaseClient) SetInventoryItemChecked(id uuid.UUID, checked bool) error {
	res, err := d.db.Exec(`
		UPDATE inventory_checklist
		SET is_checked = $2, updated_at = now()
		WHERE id = $1
	`, id, checked)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (d *DatabaseClient) DeleteInventoryItem(id uuid.UUID) error {
	_, err := d.db.Exec(`DELETE FROM inventory_checklist WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}
