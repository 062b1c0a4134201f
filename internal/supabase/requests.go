package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/requests"
)

const orderRequestColumns = `id, customer_name, customer_email, customer_phone, cake_type,
	event_type, event_date::text, servings, budget, request_details, status, created_at, updated_at`

// CreateOrderRequest persists a validated submission. Status is always
// "new" and timestamps are set by the database.
func (d *DatabaseClient) CreateOrderRequest(req requests.NewOrderRequest) (*models.OrderRequest, error) {
	var rec models.OrderRequest
	err := d.db.QueryRow(`
		INSERT INTO order_requests
			(customer_name, customer_email, customer_phone, cake_type, event_type,
			 event_date, servings, budget, request_details, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'new')
		RETURNING `+orderRequestColumns+`
	`, req.CustomerName, nullString(req.CustomerEmail), req.CustomerPhone, req.CakeType,
		nullString(req.EventType), req.EventDate, req.Servings, nullString(req.Budget),
		nullString(req.RequestDetails),
	).Scan(
		&rec.ID, &rec.CustomerName, &rec.CustomerEmail, &rec.CustomerPhone, &rec.CakeType,
		&rec.EventType, &rec.EventDate, &rec.Servings, &rec.Budget, &rec.RequestDetails,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order request: %w", err)
	}
	return &rec, nil
}

func (d *DatabaseClient) GetOrderRequest(id uuid.UUID) (*models.OrderRequest, error) {
	var rec models.OrderRequest
	err := d.db.QueryRow(`
		SELECT `+orderRequestColumns+`
		FROM order_requests
		WHERE id = $1
	`, id).Scan(
		&rec.ID, &rec.CustomerName, &rec.CustomerEmail, &rec.CustomerPhone, &rec.CakeType,
		&rec.EventType, &rec.EventDate, &rec.Servings, &rec.Budget, &rec.RequestDetails,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order request: %w", err)
	}
	return &rec, nil
}

// ListOrderRequests returns requests newest first, optionally filtered by
// status.
func (d *DatabaseClient) ListOrderRequests(status string) ([]models.OrderRequest, error) {
	query := `
		SELECT ` + orderRequestColumns + `
		FROM order_requests
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list order requests: %w", err)
	}
	defer rows.Close()

	var result []models.OrderRequest
	for rows.Next() {
		var rec models.OrderRequest
		err := rows.Scan(
			&rec.ID, &rec.CustomerName, &rec.CustomerEmail, &rec.CustomerPhone, &rec.CakeType,
			&rec.EventType, &rec.EventDate, &rec.Servings, &rec.Budget, &rec.RequestDetails,
			&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order request: %w", err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (d *DatabaseClient) SetOrderRequestStatus(id uuid.UUID, status string) error {
	res, err := d.db.Exec(`
		UPDATE order_requests
		SET status = $2, updated_at = now()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (d *DatabaseClient) ListRequestImages(requestID uuid.UUID) ([]models.RequestImage, error) {
	rows, err := d.db.Query(`
		SELECT id, request_id, image_url, created_at
		FROM order_request_images
		WHERE request_id = $1
		ORDER BY created_at ASC
	`, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list request images: %w", err)
	}
	defer rows.Close()

	var images []models.RequestImage
	for rows.Next() {
		var img models.RequestImage
		if err := rows.Scan(&img.ID, &img.RequestID, &img.ImageURL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan request image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (d *DatabaseClient) AddRequestImage(requestID uuid.UUID, imageURL string) (*models.RequestImage, error) {
	var img models.RequestImage
	err := d.db.QueryRow(`
		INSERT INTO order_request_images (request_id, image_url)
		VALUES ($1, $2)
		RETURNING id, request_id, image_url, created_at
	`, requestID, imageURL).Scan(&img.ID, &img.RequestID, &img.ImageURL, &img.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add request image: %w", err)
	}
	return &img, nil
}

// DeleteOrderRequest removes a request and its inspiration images, and
// returns the removed image URLs so callers can clean up storage objects.
func (d *DatabaseClient) DeleteOrderRequest(id uuid.UUID) ([]string, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	urls, err := collectURLs(tx.Query(`
		SELECT image_url FROM order_request_images WHERE request_id = $1
	`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to list request images: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM order_request_images WHERE request_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete request images: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM order_requests WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete order request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit delete: %w", err)
	}
	return urls, nil
}

// ConvertRequestToOrder turns an accepted request into a pending order as a
// single transaction: a new order with zero amounts, one vision image per
// inspiration image, and the request marked confirmed. Nothing is visible
// unless all three steps commit.
func (d *DatabaseClient) ConvertRequestToOrder(requestID, operatorID uuid.UUID) (uuid.UUID, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var req models.OrderRequest
	err = tx.QueryRow(`
		SELECT `+orderRequestColumns+`
		FROM order_requests
		WHERE id = $1
		FOR UPDATE
	`, requestID).Scan(
		&req.ID, &req.CustomerName, &req.CustomerEmail, &req.CustomerPhone, &req.CakeType,
		&req.EventType, &req.EventDate, &req.Servings, &req.Budget, &req.RequestDetails,
		&req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to load order request: %w", err)
	}

	orderID := uuid.New()
	_, err = tx.Exec(`
		INSERT INTO orders
			(id, user_id, customer_name, customer_email, customer_phone, cake_type,
			 event_type, event_date, servings, order_notes, status, deposit_amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'pending', 0, 0)
	`, orderID, operatorID, req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.CakeType, req.EventType, req.EventDate, req.Servings, req.RequestDetails)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create order: %w", err)
	}

	urls, err := collectURLs(tx.Query(`
		SELECT image_url FROM order_request_images WHERE request_id = $1
	`, requestID))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to list request images: %w", err)
	}
	for _, url := range urls {
		_, err = tx.Exec(`
			INSERT INTO order_vision_images (order_id, image_url, caption)
			VALUES ($1, $2, NULL)
		`, orderID, url)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to copy request image: %w", err)
		}
	}

	_, err = tx.Exec(`
		UPDATE order_requests
		SET status = 'confirmed', updated_at = now()
		WHERE id = $1
	`, requestID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to confirm order request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit conversion: %w", err)
	}
	return orderID, nil
}
