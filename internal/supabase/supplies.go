package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

const supplyColumns = `id, name, category, unit, unit_price, current_stock,
	low_stock_threshold, is_low_stock, created_at, updated_at`

func scanSupply(s interface{ Scan(...interface{}) error }) (models.Supply, error) {
	var sup models.Supply
	err := s.Scan(
		&sup.ID, &sup.Name, &sup.Category, &sup.Unit, &sup.UnitPrice, &sup.CurrentStock,
		&sup.LowStockThreshold, &sup.IsLowStock, &sup.CreatedAt, &sup.UpdatedAt,
	)
	return sup, err
}

// CreateSupply inserts a supply. is_low_stock is derived, never supplied by
// the caller.
func (d *DatabaseClient) CreateSupply(in models.SupplyInput) (*models.Supply, error) {
	row := d.db.QueryRow(`
		INSERT INTO supplies (name, category, unit, unit_price, current_stock, low_stock_threshold, is_low_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $5 <= $6)
		RETURNING `+supplyColumns+`
	`, in.Name, in.Category, in.Unit, in.UnitPrice, in.CurrentStock, in.LowStockThreshold)
	sup, err := scanSupply(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create supply: %w", err)
	}
	return &sup, nil
}

func (d *DatabaseClient) ListSupplies() ([]models.Supply, error) {
	rows, err := d.db.Query(`
		SELECT ` + supplyColumns + `
		FROM supplies
		ORDER BY category ASC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplies: %w", err)
	}
	defer rows.Close()

	var supplies []models.Supply
	for rows.Next() {
		sup, err := scanSupply(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supply: %w", err)
		}
		supplies = append(supplies, sup)
	}
	return supplies, rows.Err()
}

func (d *DatabaseClient) UpdateSupply(id uuid.UUID, in models.SupplyInput) (*models.Supply, error) {
	row := d.db.QueryRow(`
		UPDATE supplies
		SET name = $2, category = $3, unit = $4, unit_price = $5,
		    current_stock = $6, low_stock_threshold = $7,
		    is_low_stock = $6 <= $7, updated_at = now()
		WHERE id = $1
		RETURNING `+supplyColumns+`
	`, id, in.Name, in.Category, in.Unit, in.UnitPrice, in.CurrentStock, in.LowStockThreshold)
	sup, err := scanSupply(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update supply: %w", err)
	}
	return &sup, nil
}

func (d *DatabaseClient) DeleteSupply(id uuid.UUID) error {
	_, err := d.db.Exec(`DELETE FROM supplies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supply: %w", err)
	}
	return nil
}

// AddOrderSupply links a supply to an order for cost tracking.
func (d *DatabaseClient) AddOrderSupply(orderID, supplyID uuid.UUID, quantity float64) (*models.OrderSupply, error) {
	var os models.OrderSupply
	err := d.db.QueryRow(`
		INSERT INTO order_supplies (order_id, supply_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, order_id, supply_id, quantity, created_at
	`, orderID, supplyID, quantity).Scan(&os.ID, &os.OrderID, &os.SupplyID, &os.Quantity, &os.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add order supply: %w", err)
	}
	return &os, nil
}

func (d *DatabaseClient) ListOrderSupplies(orderID uuid.UUID) ([]models.OrderSupply, error) {
	rows, err := d.db.Query(`
		SELECT os.id, os.order_id, os.supply_id, s.name, s.unit, s.unit_price, os.quantity, os.created_at
		FROM order_supplies os
		JOIN supplies s ON s.id = os.supply_id
		WHERE os.order_id = $1
		ORDER BY os.created_at ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order supplies: %w", err)
	}
	defer rows.Close()

	var result []models.OrderSupply
	for rows.Next() {
		var os models.OrderSupply
		err := rows.Scan(&os.ID, &os.OrderID, &os.SupplyID, &os.SupplyName, &os.Unit,
			&os.UnitPrice, &os.Quantity, &os.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order supply: %w", err)
		}
		result = append(result, os)
	}
	return result, rows.Err()
}

func (d *DatabaseClient) DeleteOrderSupply(id uuid.UUID) error {
	_, err := d.db.Exec(`DELETE FROM order_supplies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order supply: %w", err)
	}
	return nil
}
