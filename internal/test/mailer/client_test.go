package mailer_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/snoutandabout-dev/mahoneymakes/internal/mailer"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

func TestClient_Send(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer server.Close()

	client := mailer.NewClient(server.URL, "test-key", "Mahoney Makes <hello@example.com>")
	err := client.Send("baker@example.com", "New Order Request from Maria Lopez", "<p>hi</p>")

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Mahoney Makes <hello@example.com>", gotBody["from"])
	assert.Equal(t, []interface{}{"baker@example.com"}, gotBody["to"])
	assert.Equal(t, "New Order Request from Maria Lopez", gotBody["subject"])
	assert.Equal(t, "<p>hi</p>", gotBody["html"])
}

func TestClient_SendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	client := mailer.NewClient(server.URL, "test-key", "bad-from")
	err := client.Send("baker@example.com", "subject", "<p>hi</p>")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestClient_Unconfigured(t *testing.T) {
	client := mailer.NewClient("https://api.resend.com", "", "from@example.com")

	assert.False(t, client.Configured())
	assert.Error(t, client.Send("a@b.com", "s", "h"))
}

func TestBakerNotification_IncludesOrderFields(t *testing.T) {
	servings := 24
	html, err := mailer.BakerNotification(models.NotificationPayload{
		OrderID:        "abc-123",
		CustomerName:   "Maria Lopez",
		CustomerEmail:  "maria@example.com",
		CustomerPhone:  "555-0142",
		CakeType:       "Chocolate fudge",
		EventDate:      "2026-04-18",
		Servings:       &servings,
		RequestDetails: "Three tiers with gold leaf.",
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Maria Lopez")
	assert.Contains(t, html, "Chocolate fudge")
	assert.Contains(t, html, "Three tiers with gold leaf.")
	assert.Contains(t, html, "Saturday, April 18, 2026")
}

func TestCustomerConfirmation_AddressesCustomer(t *testing.T) {
	html, err := mailer.CustomerConfirmation(models.NotificationPayload{
		OrderID:      "abc-123",
		CustomerName: "Maria Lopez",
		CakeType:     "Chocolate fudge",
		EventDate:    "2026-04-18",
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Maria Lopez")
}

func TestOrderSummaryText(t *testing.T) {
	text := mailer.OrderSummaryText(models.NotificationPayload{
		OrderID:      "abc-123",
		CustomerName: "Maria Lopez",
		CakeType:     "Chocolate fudge",
	})

	assert.Contains(t, text, "abc-123")
	assert.Contains(t, text, "Maria Lopez")
	assert.Contains(t, text, "Chocolate fudge")
}
