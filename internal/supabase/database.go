package supabase

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/snoutandabout-dev/mahoneymakes/internal/ratelimit"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// NewDatabaseClientWithDB wraps an existing connection. Used by tests.
func NewDatabaseClientWithDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

// CheckRateLimit records one request against the (ip, endpoint) window and
// reports whether it is allowed. The read-modify-write runs under a row
// lock so concurrent submissions from the same IP cannot undercount. A
// denied request does not advance the counter.
func (d *DatabaseClient) CheckRateLimit(ip, endpoint string, maxRequests, windowMinutes int) (bool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current ratelimit.Window
	err = tx.QueryRow(`
		SELECT window_start, request_count
		FROM rate_limit_windows
		WHERE ip_address = $1 AND endpoint = $2
		FOR UPDATE
	`, ip, endpoint).Scan(&current.WindowStart, &current.RequestCount)

	now := time.Now()
	var allowed bool
	var next ratelimit.Window

	switch {
	case err == sql.ErrNoRows:
		allowed, next = ratelimit.Decide(now, nil, maxRequests, windowMinutes)
		_, err = tx.Exec(`
			INSERT INTO rate_limit_windows (ip_address, endpoint, window_start, request_count)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (ip_address, endpoint) DO UPDATE
			SET window_start = EXCLUDED.window_start, request_count = EXCLUDED.request_count
		`, ip, endpoint, next.WindowStart, next.RequestCount)
		if err != nil {
			return false, fmt.Errorf("failed to insert rate limit window: %w", err)
		}
	case err != nil:
		return false, fmt.Errorf("failed to read rate limit window: %w", err)
	default:
		allowed, next = ratelimit.Decide(now, &current, maxRequests, windowMinutes)
		if allowed {
			_, err = tx.Exec(`
				UPDATE rate_limit_windows
				SET window_start = $3, request_count = $4
				WHERE ip_address = $1 AND endpoint = $2
			`, ip, endpoint, next.WindowStart, next.RequestCount)
			if err != nil {
				return false, fmt.Errorf("failed to update rate limit window: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit rate limit window: %w", err)
	}

	return allowed, nil
}
