package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

const orderColumns = `id, user_id, customer_name, customer_email, customer_phone, cake_type,
	event_type, event_date::text, servings, order_notes, status, deposit_amount, total_amount,
	created_at, updated_at`

func scanOrder(s interface{ Scan(...interface{}) error }) (models.Order, error) {
	var o models.Order
	err := s.Scan(
		&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.CakeType,
		&o.EventType, &o.EventDate, &o.Servings, &o.OrderNotes, &o.Status,
		&o.DepositAmount, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (d *DatabaseClient) CreateOrder(operatorID uuid.UUID, in models.OrderInput) (*models.Order, error) {
	status := in.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	row := d.db.QueryRow(`
		INSERT INTO orders
			(user_id, customer_name, customer_email, customer_phone, cake_type, event_type,
			 event_date, servings, order_notes, status, deposit_amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+orderColumns+`
	`, operatorID, in.CustomerName, in.CustomerEmail, in.CustomerPhone, in.CakeType,
		in.EventType, in.EventDate, in.Servings, in.OrderNotes, status,
		in.DepositAmount, in.TotalAmount)
	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

func (d *DatabaseClient) GetOrder(id uuid.UUID) (*models.Order, error) {
	row := d.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// ListOrders returns orders nearest event first. Start and end (ISO dates)
// optionally narrow the range.
func (d *DatabaseClient) ListOrders(start, end string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}
	if start != "" && end != "" {
		query += ` WHERE event_date >= $1 AND event_date <= $2`
		args = append(args, start, end)
	}
	query += ` ORDER BY event_date ASC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (d *DatabaseClient) UpdateOrder(id uuid.UUID, in models.OrderInput) (*models.Order, error) {
	row := d.db.QueryRow(`
		UPDATE orders
		SET customer_name = $2, customer_email = $3, customer_phone = $4, cake_type = $5,
		    event_type = $6, event_date = $7, servings = $8, order_notes = $9,
		    status = $10, deposit_amount = $11, total_amount = $12, updated_at = now()
		WHERE id = $1
		RETURNING `+orderColumns+`
	`, id, in.CustomerName, in.CustomerEmail, in.CustomerPhone, in.CakeType, in.EventType,
		in.EventDate, in.Servings, in.OrderNotes, in.Status, in.DepositAmount, in.TotalAmount)
	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return &order, nil
}

// DeleteOrderCascade removes an order together with its vision images,
// cost-tracking rows and payments, and returns the removed image URLs for
// storage cleanup.
func (d *DatabaseClient) DeleteOrderCascade(id uuid.UUID) ([]string, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	urls, err := collectURLs(tx.Query(`
		SELECT image_url FROM order_vision_images WHERE order_id = $1
	`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to list vision images: %w", err)
	}

	for _, stmt := range []string{
		`DELETE FROM order_vision_images WHERE order_id = $1`,
		`DELETE FROM order_supplies WHERE order_id = $1`,
		`DELETE FROM payments WHERE order_id = $1`,
		`DELETE FROM orders WHERE id = $1`,
	} {
		if _, err := tx.Exec(stmt, id); err != nil {
			return nil, fmt.Errorf("failed to cascade delete order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit delete: %w", err)
	}
	return urls, nil
}

func (d *DatabaseClient) ListVisionImages(orderID uuid.UUID) ([]models.VisionImage, error) {
	rows, err := d.db.Query(`
		SELECT id, order_id, image_url, caption, created_at
		FROM order_vision_images
		WHERE order_id = $1
		ORDER BY created_at ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vision images: %w", err)
	}
	defer rows.Close()

	var images []models.VisionImage
	for rows.Next() {
		var img models.VisionImage
		if err := rows.Scan(&img.ID, &img.OrderID, &img.ImageURL, &img.Caption, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vision image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (d *DatabaseClient) AddVisionImage(orderID uuid.UUID, imageURL string, caption *string) (*models.VisionImage, error) {
	var img models.VisionImage
	err := d.db.QueryRow(`
		INSERT INTO order_vision_images (order_id, image_url, caption)
		VALUES ($1, $2, $3)
		RETURNING id, order_id, image_url, caption, created_at
	`, orderID, imageURL, caption).Scan(&img.ID, &img.OrderID, &img.ImageURL, &img.Caption, &img.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add vision image: %w", err)
	}
	return &img, nil
}
