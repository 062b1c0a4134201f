package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

const calendarColumns = `id, title, description, event_date::text, event_time, event_type,
	is_completed, color, created_at, updated_at`

// ListCalendarEvents returns events earliest first. Start and end (ISO
// dates) optionally narrow the inclusive range.
func (d *DatabaseClient) ListCalendarEvents(start, end string) ([]models.CalendarEvent, error) {
	query := `SELECT ` + calendarColumns + ` FROM calendar_events`
	args := []interface{}{}
	if start != "" && end != "" {
		query += ` WHERE event_date >= $1 AND event_date <= $2`
		args = append(args, start, end)
	}
	query += ` ORDER BY event_date ASC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	defer rows.Close()

	var events []models.CalendarEvent
	for rows.Next() {
		var ev models.CalendarEvent
		err := rows.Scan(&ev.ID, &ev.Title, &ev.Description, &ev.EventDate, &ev.EventTime,
			&ev.EventType, &ev.IsCompleted, &ev.Color, &ev.CreatedAt, &ev.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calendar event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (d *DatabaseClient) AddCalendarEvent(in models.CalendarEventInput) (*models.CalendarEvent, error) {
	eventType := in.EventType
	if eventType == "" {
		eventType = "task"
	}
	color := in.Color
	if color == "" {
		color = "#D4A574"
	}
	var ev models.CalendarEvent
	err := d.db.QueryRow(`
		INSERT INTO calendar_events (title, description, event_date, event_time, event_type, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+calendarColumns+`
	`, in.Title, in.Description, in.EventDate, in.EventTime, eventType, color).Scan(
		&ev.ID, &ev.Title, &ev.Description, &ev.EventDate, &ev.EventTime,
		&ev.EventType, &ev.IsCompleted, &ev.Color, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add calendar event: %w", err)
	}
	return &ev, nil
}

func (d *DatabaseClient) SetCalendarEventCompleted(id uuid.UUID, completed bool) error {
	res, err := d.db.Exec(`
		UPDATE calendar_events
		SET is_completed = $2, updated_at = now()
		WHERE id = $1
	`, id, completed)
	if err != nil {
		return fmt.Errorf("failed to update calendar event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (d *DatabaseClient) DeleteCalendarEvent(id uuid.UUID) error {
	_, err := d.db.Exec(`DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}
