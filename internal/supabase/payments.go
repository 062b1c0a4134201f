package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

const paymentColumns = `id, order_id, amount, payment_type, payment_method, notes,
	payment_date::text, created_at, updated_at`

func (d *DatabaseClient) CreatePayment(orderID uuid.UUID, in models.PaymentInput) (*models.Payment, error) {
	var p models.Payment
	err := d.db.QueryRow(`
		INSERT INTO payments (order_id, amount, payment_type, payment_method, notes, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+paymentColumns+`
	`, orderID, in.Amount, in.PaymentType, in.PaymentMethod, in.Notes, in.PaymentDate).Scan(
		&p.ID, &p.OrderID, &p.Amount, &p.PaymentType, &p.PaymentMethod, &p.Notes,
		&p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return &p, nil
}

func (d *DatabaseClient) ListPayments() ([]models.Payment, error) {
	return d.queryPayments(`
		SELECT `+paymentColumns+`
		FROM payments
		ORDER BY payment_date DESC
	`)
}

func (d *DatabaseClient) ListPaymentsByOrder(orderID uuid.UUID) ([]models.Payment, error) {
	return d.queryPayments(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE order_id = $1
		ORDER BY payment_date DESC
	`, orderID)
}

func (d *DatabaseClient) queryPayments(query string, args ...interface{}) ([]models.Payment, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(
			&p.ID, &p.OrderID, &p.Amount, &p.PaymentType, &p.PaymentMethod, &p.Notes,
			&p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (d *DatabaseClient) DeletePayment(id uuid.UUID) error {
	_, err := d.db.Exec(`DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

// RevenueReport aggregates payments and outstanding order balances over a
// date range (inclusive ISO dates).
func (d *DatabaseClient) RevenueReport(start, end string) (*models.RevenueReport, error) {
	report := &models.RevenueReport{
		StartDate:       start,
		EndDate:         end,
		RevenueByMethod: map[string]float64{},
	}

	err := d.db.QueryRow(`
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM payments
		WHERE payment_date >= $1 AND payment_date <= $2
	`, start, end).Scan(&report.TotalRevenue, &report.PaymentCount)
	if err != nil {
		return nil, fmt.Errorf("failed to total payments: %w", err)
	}

	rows, err := d.db.Query(`
		SELECT payment_method, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE payment_date >= $1 AND payment_date <= $2
		GROUP BY payment_method
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to group payments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var method string
		var total float64
		if err := rows.Scan(&method, &total); err != nil {
			return nil, fmt.Errorf("failed to scan payment group: %w", err)
		}
		report.RevenueByMethod[method] = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = d.db.QueryRow(`
		SELECT COALESCE(SUM(o.total_amount), 0) - COALESCE((
			SELECT SUM(p.amount) FROM payments p
			JOIN orders o2 ON o2.id = p.order_id
			WHERE o2.status <> 'cancelled'
		), 0)
		FROM orders o
		WHERE o.status <> 'cancelled'
	`).Scan(&report.OutstandingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to compute outstanding balance: %w", err)
	}

	return report, nil
}
