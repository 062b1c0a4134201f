package requests

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Field length ceilings, matching the order_requests schema.
const (
	MaxNameLen    = 100
	MaxEmailLen   = 255
	MaxPhoneLen   = 20
	MaxCakeLen    = 100
	MaxEventLen   = 50
	MaxBudgetLen  = 50
	MaxDetailsLen = 2000

	MinServings = 6
	MaxServings = 500
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is the raw JSON body of the public order-request endpoint.
// The honeypot field is invisible to real users; anything filling it in
// is assumed to be a bot.
type Submission struct {
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
	CakeType       string `json:"cake_type"`
	EventType      string `json:"event_type"`
	EventDate      string `json:"event_date"`
	Servings       *int   `json:"servings"`
	Budget         string `json:"budget"`
	RequestDetails string `json:"request_details"`
	Honeypot       string `json:"honeypot"`
}

// NewOrderRequest is a validated, normalized submission ready for
// persistence. Optional strings are empty when not provided.
type NewOrderRequest struct {
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	CakeType       string
	EventType      string
	EventDate      string
	Servings       *int
	Budget         string
	RequestDetails string
}

// ValidationError names the first field that failed and carries the
// message surfaced to the submitter.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Validate checks a submission in a fixed, first-failure-wins order and
// returns the normalized payload. All string fields are trimmed and
// truncated to their column limits; request_details is never rejected for
// length, over-long input is silently cut at 2000 characters.
func Validate(s Submission, now time.Time) (NewOrderRequest, error) {
	required := []struct {
		field, value string
	}{
		{"customer_name", s.CustomerName},
		{"customer_phone", s.CustomerPhone},
		{"cake_type", s.CakeType},
		{"event_date", s.EventDate},
		{"request_details", s.RequestDetails},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return NewOrderRequest{}, invalid(r.field, fmt.Sprintf("Missing required field: %s", r.field))
		}
	}

	if len([]rune(strings.TrimSpace(s.CustomerName))) > MaxNameLen {
		return NewOrderRequest{}, invalid("customer_name", "Customer name must be 100 characters or less")
	}
	if len([]rune(strings.TrimSpace(s.CustomerPhone))) > MaxPhoneLen {
		return NewOrderRequest{}, invalid("customer_phone", "Phone number must be 20 characters or less")
	}

	email := strings.TrimSpace(s.CustomerEmail)
	if email != "" && !emailPattern.MatchString(email) {
		return NewOrderRequest{}, invalid("customer_email", "Invalid email format")
	}

	eventDate, err := parseEventDate(strings.TrimSpace(s.EventDate))
	if err != nil {
		return NewOrderRequest{}, invalid("event_date", "Invalid event date")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if eventDate.Before(today) {
		return NewOrderRequest{}, invalid("event_date", "Event date must be in the future")
	}

	if s.Servings != nil && (*s.Servings < MinServings || *s.Servings > MaxServings) {
		return NewOrderRequest{}, invalid("servings", "Servings must be between 6 and 500")
	}

	return NewOrderRequest{
		CustomerName:   truncate(s.CustomerName, MaxNameLen),
		CustomerEmail:  truncate(s.CustomerEmail, MaxEmailLen),
		CustomerPhone:  truncate(s.CustomerPhone, MaxPhoneLen),
		CakeType:       truncate(s.CakeType, MaxCakeLen),
		EventType:      truncate(s.EventType, MaxEventLen),
		EventDate:      eventDate.Format("2006-01-02"),
		Servings:       s.Servings,
		Budget:         truncate(s.Budget, MaxBudgetLen),
		RequestDetails: truncate(s.RequestDetails, MaxDetailsLen),
	}, nil
}

func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func truncate(value string, max int) string {
	trimmed := strings.TrimSpace(value)
	runes := []rune(trimmed)
	if len(runes) <= max {
		return trimmed
	}
	return string(runes[:max])
}
