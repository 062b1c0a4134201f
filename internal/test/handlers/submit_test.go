package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/snoutandabout-dev/mahoneymakes/internal/handlers"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/requests"
	"github.com/snoutandabout-dev/mahoneymakes/internal/services"
)

type fakeStore struct {
	mu      sync.Mutex
	created []requests.NewOrderRequest
	err     error
}

func (f *fakeStore) CreateOrderRequest(req requests.NewOrderRequest) (*models.OrderRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &models.OrderRequest{
		ID:           uuid.New(),
		CustomerName: req.CustomerName,
		EventDate:    req.EventDate,
		Status:       models.RequestStatusNew,
	}, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type fakeLimiter struct {
	allowed bool
	err     error
	lastIP  string
}

func (f *fakeLimiter) CheckRateLimit(ip, endpoint string, maxRequests, windowMinutes int) (bool, error) {
	f.lastIP = ip
	return f.allowed, f.err
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []models.NotificationPayload
}

func (f *fakeNotifier) Notify(p models.NotificationPayload) services.NotificationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, p)
	return services.NotificationResult{BakerNotified: true, CustomerNotified: true}
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func submitRouter(store *fakeStore, limiter *fakeLimiter, notifier *fakeNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewSubmitHandler(store, limiter, notifier, nil)
	router := gin.New()
	router.POST("/functions/submit-order-request", h.Submit)
	return router
}

func submitBody(t *testing.T, mutate func(m map[string]interface{})) *bytes.Reader {
	t.Helper()
	m := map[string]interface{}{
		"customer_name":   "Maria Lopez",
		"customer_email":  "maria@example.com",
		"customer_phone":  "555-0142",
		"cake_type":       "Chocolate fudge",
		"event_date":      time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		"servings":        24,
		"request_details": "Three tiers.",
	}
	if mutate != nil {
		mutate(m)
	}
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func TestSubmit_Success(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	router := submitRouter(store, &fakeLimiter{allowed: true}, notifier)

	req, _ := http.NewRequest("POST", "/functions/submit-order-request", submitBody(t, nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, store.count())

	// Notifications run off the request goroutine.
	assert.Eventually(t, func() bool { return notifier.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestSubmit_RateLimited(t *testing.T) {
	store := &fakeStore{}
	router := submitRouter(store, &fakeLimiter{allowed: false}, &fakeNotifier{})

	req, _ := http.NewRequest("POST", "/functions/submit-order-request", submitBody(t, nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))

	var resp models.RateLimitedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3600, resp.RetryAfter)
	assert.Zero(t, store.count())
}

func TestSubmit_RateLimitFailsOpen(t *testing.T) {
	store := &fakeStore{}
	router := submitRouter(store, &fakeLimiter{err: errors.New("db down")}, &fakeNotifier{})

	req, _ := http.NewRequest("POST", "/functions/submit-order-request", submitBody(t, nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.count())
}

func TestSubmit_ClientIPFromForwardedFor(t *testing.T) {
	limiter := &fakeLimiter{allowed: true}
	router := submitRouter(&fakeStore{}, limiter, &fakeNotifier{})

	req, _ := http.NewRequest("POST", "/functions/submit-order-request", submitBody(t, nil))
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "203.0.113.7", limiter.lastIP)
}

func TestSubmit_ClientIPFallsBackToUnknown(t *testing.T) {
	limiter := &fakeLimiter{allowed: true}
	router := submitRouter(&fakeStore{}, limiter, &fakeNotifier{})

	req, _ := http.NewRequest("POST", "/functions/submit-order-request", submitBody(t, nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "unknown", limiter.lastIP)
}

// A trapped submission must be indistinguishable from a real one: same
// status, same fields, a plausible id. Nothing may be stored or sent.
func TestSubmit_HoneypotFakeSuccess(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	router := submitRouter(store, &fakeLimiter{allowed: true}, notifier)

	req, _ := http.NewRequest("POST", "/functions/submit-order-request",
		submitBody(t, func(m map[string]interface{}) { m["honeypot"] = "gotcha" }))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var fake models.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fake))
	assert.True(t, fake.Success)
	assert.True(t, strings.HasPrefix(fake.ID, "fake-"))
	assert.NotEmpty(t, fake.Message)

	// Same shape as a genuine success.
	realReq, _ := http.NewRequest("POST", "/functions/submit-order-request", submitBody(t, nil))
	realW := httptest.NewRecorder()
	router.ServeHTTP(realW, realReq)
	require.Equal(t, w.Code, realW.Code)

	var genuine models.SubmitResponse
	require.NoError(t, json.Unmarshal(realW.Body.Bytes(), &genuine))
	assert.Equal(t, genuine.Success, fake.Success)
	assert.Equal(t, genuine.Message, fake.Message)

	// Only the genuine submission reached the store and notifier.
	assert.Equal(t, 1, store.count())
	assert.Eventually(t, func() bool { return notifier.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestSubmit_ValidationFailure(t *testing.T) {
	store := &fakeStore{}
	router := submitRouter(store, &fakeLimiter{allowed: true}, &fakeNotifier{})

	req, _ := http.NewRequest("POST", "/functions/submit-order-request",
		submitBody(t, func(m map[string]interface{}) { m["customer_name"] = "" }))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required field: customer_name")
	assert.Zero(t, store.count())
}

func TestSubmit_MalformedJSON(t *testing.T) {
	router := submitRouter(&fakeStore{}, &fakeLimiter{allowed: true}, &fakeNotifier{})

	req, _ := http.NewRequest("POST", "/functions/submit-order-request", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmit_StoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("insert failed")}
	notifier := &fakeNotifier{}
	router := submitRouter(store, &fakeLimiter{allowed: true}, notifier)

	req, _ := http.NewRequest("POST", "/functions/submit-order-request", submitBody(t, nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Zero(t, notifier.count())
}
