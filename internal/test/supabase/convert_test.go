package supabase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

var requestColumns = []string{
	"id", "customer_name", "customer_email", "customer_phone", "cake_type",
	"event_type", "event_date", "servings", "budget", "request_details",
	"status", "created_at", "updated_at",
}

func requestRow(id uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(requestColumns).AddRow(
		id, "Maria Lopez", "maria@example.com", "555-0142", "Chocolate fudge",
		"Birthday", "2026-04-18", 24, "$150-$200", "Three tiers.",
		"new", now, now,
	)
}

// The whole conversion is one transaction: the order insert, the image
// copies, and the status flip all commit together.
func TestConvertRequestToOrder_Commits(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	requestID := uuid.New()
	operatorID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM order_requests").
		WithArgs(requestID).
		WillReturnRows(requestRow(requestID))
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT image_url FROM order_request_images").
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows([]string{"image_url"}).
			AddRow("https://cdn.example.com/one.jpg").
			AddRow("https://cdn.example.com/two.jpg").
			AddRow("https://cdn.example.com/three.jpg"))
	for i := 0; i < 3; i++ {
		mock.ExpectExec("INSERT INTO order_vision_images").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec("UPDATE order_requests").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	client := supabase.NewDatabaseClientWithDB(db)
	orderID, err := client.ConvertRequestToOrder(requestID, operatorID)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, orderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure partway through must roll everything back; no order appears
// and the request keeps its status.
func TestConvertRequestToOrder_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM order_requests").
		WithArgs(requestID).
		WillReturnRows(requestRow(requestID))
	mock.ExpectExec("INSERT INTO orders").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	client := supabase.NewDatabaseClientWithDB(db)
	_, err = client.ConvertRequestToOrder(requestID, uuid.New())

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertRequestToOrder_RequestMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM order_requests").
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows(requestColumns))
	mock.ExpectRollback()

	client := supabase.NewDatabaseClientWithDB(db)
	_, err = client.ConvertRequestToOrder(requestID, uuid.New())

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrderRequest_ReturnsImageURLs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT image_url FROM order_request_images").
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows([]string{"image_url"}).
			AddRow("https://cdn.example.com/one.jpg"))
	mock.ExpectExec("DELETE FROM order_request_images").
		WithArgs(requestID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM order_requests").
		WithArgs(requestID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	client := supabase.NewDatabaseClientWithDB(db)
	urls, err := client.DeleteOrderRequest(requestID)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/one.jpg"}, urls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
