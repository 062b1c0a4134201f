package requests_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/snoutandabout-dev/mahoneymakes/internal/requests"
)

var now = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

func validSubmission() requests.Submission {
	servings := 24
	return requests.Submission{
		CustomerName:   "Maria Lopez",
		CustomerEmail:  "maria@example.com",
		CustomerPhone:  "555-0142",
		CakeType:       "Chocolate fudge",
		EventType:      "Birthday",
		EventDate:      "2026-04-18",
		Servings:       &servings,
		Budget:         "$150-$200",
		RequestDetails: "Three tiers with gold leaf accents.",
	}
}

func TestValidate_Valid(t *testing.T) {
	out, err := requests.Validate(validSubmission(), now)
	require.NoError(t, err)

	assert.Equal(t, "Maria Lopez", out.CustomerName)
	assert.Equal(t, "2026-04-18", out.EventDate)
	require.NotNil(t, out.Servings)
	assert.Equal(t, 24, *out.Servings)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	for _, field := range []string{"customer_name", "customer_phone", "cake_type", "event_date", "request_details"} {
		s := validSubmission()
		switch field {
		case "customer_name":
			s.CustomerName = "   "
		case "customer_phone":
			s.CustomerPhone = ""
		case "cake_type":
			s.CakeType = ""
		case "event_date":
			s.EventDate = ""
		case "request_details":
			s.RequestDetails = ""
		}

		_, err := requests.Validate(s, now)
		require.Error(t, err, field)
		assert.Equal(t, "Missing required field: "+field, err.Error())
	}
}

func TestValidate_NameTooLong(t *testing.T) {
	s := validSubmission()
	s.CustomerName = strings.Repeat("a", 101)

	_, err := requests.Validate(s, now)
	require.Error(t, err)
	assert.Equal(t, "Customer name must be 100 characters or less", err.Error())
}

func TestValidate_PhoneTooLong(t *testing.T) {
	s := validSubmission()
	s.CustomerPhone = strings.Repeat("5", 21)

	_, err := requests.Validate(s, now)
	require.Error(t, err)
	assert.Equal(t, "Phone number must be 20 characters or less", err.Error())
}

func TestValidate_EmailFormat(t *testing.T) {
	for _, bad := range []string{"nope", "a b@example.com", "a@b", "@example.com", "a@"} {
		s := validSubmission()
		s.CustomerEmail = bad

		_, err := requests.Validate(s, now)
		require.Error(t, err, bad)
		assert.Equal(t, "Invalid email format", err.Error())
	}

	// Email is optional.
	s := validSubmission()
	s.CustomerEmail = ""
	_, err := requests.Validate(s, now)
	assert.NoError(t, err)
}

func TestValidate_EventDate(t *testing.T) {
	s := validSubmission()
	s.EventDate = "not-a-date"
	_, err := requests.Validate(s, now)
	require.Error(t, err)
	assert.Equal(t, "Invalid event date", err.Error())

	s = validSubmission()
	s.EventDate = "2026-03-09"
	_, err = requests.Validate(s, now)
	require.Error(t, err)
	assert.Equal(t, "Event date must be in the future", err.Error())

	// RFC3339 timestamps are accepted and reduced to the date.
	s = validSubmission()
	s.EventDate = "2026-04-18T10:30:00Z"
	out, err := requests.Validate(s, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-04-18", out.EventDate)
}

func TestValidate_ServingsRange(t *testing.T) {
	for _, n := range []int{5, 501, 0, -1} {
		servings := n
		s := validSubmission()
		s.Servings = &servings

		_, err := requests.Validate(s, now)
		require.Error(t, err, "servings=%d", n)
		assert.Equal(t, "Servings must be between 6 and 500", err.Error())
	}

	for _, n := range []int{6, 500} {
		servings := n
		s := validSubmission()
		s.Servings = &servings

		_, err := requests.Validate(s, now)
		assert.NoError(t, err, "servings=%d", n)
	}

	// Servings is optional.
	s := validSubmission()
	s.Servings = nil
	_, err := requests.Validate(s, now)
	assert.NoError(t, err)
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	s := validSubmission()
	s.CustomerName = "  Maria Lopez  "
	s.CakeType = "\tChocolate fudge\n"

	out, err := requests.Validate(s, now)
	require.NoError(t, err)
	assert.Equal(t, "Maria Lopez", out.CustomerName)
	assert.Equal(t, "Chocolate fudge", out.CakeType)
}

// Over-long details are cut at the column limit, never rejected.
func TestValidate_DetailsTruncatedNotRejected(t *testing.T) {
	s := validSubmission()
	s.RequestDetails = strings.Repeat("x", 2001)

	out, err := requests.Validate(s, now)
	require.NoError(t, err)
	assert.Len(t, out.RequestDetails, 2000)
}

func TestValidate_TruncationCountsRunes(t *testing.T) {
	s := validSubmission()
	s.RequestDetails = strings.Repeat("é", 2005)

	out, err := requests.Validate(s, now)
	require.NoError(t, err)
	assert.Equal(t, 2000, len([]rune(out.RequestDetails)))
}
