package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/snoutandabout-dev/mahoneymakes/internal/handlers"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/services"
)

type scriptedNotifier struct {
	configured bool
	result     services.NotificationResult
	last       *models.NotificationPayload
}

func (s *scriptedNotifier) Configured() bool { return s.configured }

func (s *scriptedNotifier) Notify(p models.NotificationPayload) services.NotificationResult {
	s.last = &p
	return s.result
}

func notifyRouter(n *scriptedNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/functions/send-order-notification", handlers.NewNotifyHandler(n).Send)
	return router
}

func notifyPayload(t *testing.T) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(models.NotificationPayload{
		OrderID:       "9e1c5a0a-1111-4222-8333-444455556666",
		CustomerName:  "Maria Lopez",
		CustomerEmail: "maria@example.com",
		CakeType:      "Chocolate fudge",
		EventDate:     "2026-04-18",
	})
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func TestNotify_Unconfigured(t *testing.T) {
	router := notifyRouter(&scriptedNotifier{configured: false})

	req, _ := http.NewRequest("POST", "/functions/send-order-notification", notifyPayload(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Email service not configured")
}

func TestNotify_MissingFields(t *testing.T) {
	router := notifyRouter(&scriptedNotifier{configured: true})

	req, _ := http.NewRequest("POST", "/functions/send-order-notification",
		bytes.NewReader([]byte(`{"customerEmail":"maria@example.com"}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotify_BothSent(t *testing.T) {
	n := &scriptedNotifier{
		configured: true,
		result:     services.NotificationResult{BakerNotified: true, CustomerNotified: true},
	}
	router := notifyRouter(n)

	req, _ := http.NewRequest("POST", "/functions/send-order-notification", notifyPayload(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.NotifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.BakerNotified)
	assert.True(t, resp.CustomerNotified)
	require.NotNil(t, n.last)
	assert.Equal(t, "Maria Lopez", n.last.CustomerName)
}

// One leg failing is reported per-recipient; the response is still a
// success so the caller does not retry the whole dispatch.
func TestNotify_PartialFailure(t *testing.T) {
	router := notifyRouter(&scriptedNotifier{
		configured: true,
		result:     services.NotificationResult{BakerNotified: false, CustomerNotified: true},
	})

	req, _ := http.NewRequest("POST", "/functions/send-order-notification", notifyPayload(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.NotifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.BakerNotified)
	assert.True(t, resp.CustomerNotified)
}
