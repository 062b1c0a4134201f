package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/snoutandabout-dev/mahoneymakes/internal/handlers"
)

type fakeTextSender struct {
	configured bool
	err        error

	to, subject, body string
}

func (f *fakeTextSender) Configured() bool { return f.configured }

func (f *fakeTextSender) Send(to, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func legacyRouter(sender *fakeTextSender, alertTo, defaultTo string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Any("/functions/send-order-notification-smtp", handlers.NewLegacyNotifyHandler(sender, alertTo, defaultTo).Handle)
	return router
}

const legacyPayload = `{"orderId":"abc-123","customerName":"Maria Lopez","cakeType":"Chocolate fudge"}`

func TestLegacyNotify_Preflight(t *testing.T) {
	router := legacyRouter(&fakeTextSender{configured: true}, "baker@example.com", "")

	req, _ := http.NewRequest("OPTIONS", "/functions/send-order-notification-smtp", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLegacyNotify_MethodNotAllowed(t *testing.T) {
	router := legacyRouter(&fakeTextSender{configured: true}, "baker@example.com", "")

	req, _ := http.NewRequest("GET", "/functions/send-order-notification-smtp", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestLegacyNotify_MissingFields(t *testing.T) {
	router := legacyRouter(&fakeTextSender{configured: true}, "baker@example.com", "")

	req, _ := http.NewRequest("POST", "/functions/send-order-notification-smtp",
		bytes.NewReader([]byte(`{"cakeType":"Chocolate fudge"}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLegacyNotify_NoRecipientConfigured(t *testing.T) {
	router := legacyRouter(&fakeTextSender{configured: true}, "", "")

	req, _ := http.NewRequest("POST", "/functions/send-order-notification-smtp",
		bytes.NewReader([]byte(legacyPayload)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Email service not configured")
}

func TestLegacyNotify_SendsConfirmation(t *testing.T) {
	sender := &fakeTextSender{configured: true}
	router := legacyRouter(sender, "baker@example.com", "fallback@example.com")

	req, _ := http.NewRequest("POST", "/functions/send-order-notification-smtp",
		bytes.NewReader([]byte(`{"orderId":"abc-123","customerName":"Maria Lopez","cakeType":"Chocolate fudge","notificationType":"order_confirmed"}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Equal(t, "baker@example.com", sender.to)
	assert.Equal(t, "Order confirmed: Maria Lopez", sender.subject)
	assert.Contains(t, sender.body, "abc-123")
	assert.Contains(t, sender.body, "Chocolate fudge")
}

// Anything other than the confirmation sentinel, including an absent
// notificationType, gets the update subject.
func TestLegacyNotify_DefaultsToUpdateSubject(t *testing.T) {
	sender := &fakeTextSender{configured: true}
	router := legacyRouter(sender, "baker@example.com", "")

	req, _ := http.NewRequest("POST", "/functions/send-order-notification-smtp",
		bytes.NewReader([]byte(legacyPayload)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order update: Maria Lopez", sender.subject)
}

func TestLegacyNotify_UpdateSubjectAndFallbackRecipient(t *testing.T) {
	sender := &fakeTextSender{configured: true}
	router := legacyRouter(sender, "", "fallback@example.com")

	req, _ := http.NewRequest("POST", "/functions/send-order-notification-smtp",
		bytes.NewReader([]byte(`{"orderId":"abc-123","customerName":"Maria Lopez","notificationType":"status_change"}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fallback@example.com", sender.to)
	assert.Equal(t, "Order update: Maria Lopez", sender.subject)
}

func TestLegacyNotify_SendFailure(t *testing.T) {
	sender := &fakeTextSender{configured: true, err: errors.New("relay refused")}
	router := legacyRouter(sender, "baker@example.com", "")

	req, _ := http.NewRequest("POST", "/functions/send-order-notification-smtp",
		bytes.NewReader([]byte(legacyPayload)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
