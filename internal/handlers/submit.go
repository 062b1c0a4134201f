package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
	"github.com/snoutandabout-dev/mahoneymakes/internal/requests"
	"github.com/snoutandabout-dev/mahoneymakes/internal/services"
	"github.com/snoutandabout-dev/mahoneymakes/internal/supabase"
)

// Rate-limit policy for the public submission endpoint: 3 requests per
// hour per IP.
const (
	orderRequestEndpoint      = "order_request"
	orderRequestMaxPerWindow  = 3
	orderRequestWindowMinutes = 60
	orderRequestRetryAfterSec = 3600
)

const submitSuccessMessage = "Order request submitted successfully"

type RequestCreator interface {
	CreateOrderRequest(req requests.NewOrderRequest) (*models.OrderRequest, error)
}

type RateLimiter interface {
	CheckRateLimit(ip, endpoint string, maxRequests, windowMinutes int) (bool, error)
}

type Notifier interface {
	Notify(p models.NotificationPayload) services.NotificationResult
}

type EventPublisher interface {
	PublishRequestEvent(requestID uuid.UUID, event string, payload map[string]interface{}) error
}

// SubmitHandler is the public order-request intake: rate limit, honeypot,
// validation, persistence, then fire-and-forget notifications.
type SubmitHandler struct {
	store     RequestCreator
	limiter   RateLimiter
	notifier  Notifier
	publisher EventPublisher
}

func NewSubmitHandler(store RequestCreator, limiter RateLimiter, notifier Notifier, publisher EventPublisher) *SubmitHandler {
	return &SubmitHandler{
		store:     store,
		limiter:   limiter,
		notifier:  notifier,
		publisher: publisher,
	}
}

// Submit godoc
// @Summary     Submit an order request
// @Description Public order-inquiry intake for the marketing site
// @Tags        public
// @Accept      json
// @Produce     json
// @Param       request body requests.Submission true "Order request"
// @Success     200 {object} models.SubmitResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     429 {object} models.RateLimitedResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /functions/submit-order-request [post]
func (h *SubmitHandler) Submit(c *gin.Context) {
	ip := clientIP(c.Request.Header)

	allowed, err := h.limiter.CheckRateLimit(ip, orderRequestEndpoint, orderRequestMaxPerWindow, orderRequestWindowMinutes)
	if err != nil {
		// Fail open: availability over strict abuse prevention when the
		// counter store is unreachable.
		log.Printf("rate limit check failed for %s: %v", ip, err)
	} else if !allowed {
		c.Header("Retry-After", "3600")
		c.JSON(http.StatusTooManyRequests, models.RateLimitedResponse{
			Error:      "Too many requests. Please try again later.",
			RetryAfter: orderRequestRetryAfterSec,
		})
		return
	}

	var body requests.Submission
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	// A filled honeypot means a bot. Return a success indistinguishable
	// from the real thing and drop the submission.
	if body.Honeypot != "" {
		log.Printf("honeypot triggered from %s", ip)
		c.JSON(http.StatusOK, models.SubmitResponse{
			Success: true,
			ID:      "fake-" + uuid.NewString(),
			Message: submitSuccessMessage,
		})
		return
	}

	normalized, err := requests.Validate(body, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	rec, err := h.store.CreateOrderRequest(normalized)
	if err != nil {
		log.Printf("failed to persist order request: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to submit order request"})
		return
	}

	// Email delivery must never gate the response; the record is already
	// durable.
	go h.dispatchNotifications(rec)

	c.JSON(http.StatusOK, models.SubmitResponse{
		Success: true,
		ID:      rec.ID.String(),
		Message: submitSuccessMessage,
	})
}

func (h *SubmitHandler) dispatchNotifications(rec *models.OrderRequest) {
	result := h.notifier.Notify(NotificationPayloadFromRequest(rec))
	if !result.BakerNotified || !result.CustomerNotified {
		log.Printf("notification partially failed for request %s: baker=%t customer=%t",
			rec.ID, result.BakerNotified, result.CustomerNotified)
	}

	if h.publisher != nil {
		if err := h.publisher.PublishRequestEvent(rec.ID, "request:new",
			supabase.RequestReceivedPayload(rec.ID, rec.CustomerName)); err != nil {
			log.Printf("failed to publish request event: %v", err)
		}
	}
}

// NotificationPayloadFromRequest flattens a stored request into the shape
// shared by the notification endpoints and the mail templates.
func NotificationPayloadFromRequest(rec *models.OrderRequest) models.NotificationPayload {
	return models.NotificationPayload{
		OrderID:        rec.ID.String(),
		CustomerName:   rec.CustomerName,
		CustomerEmail:  deref(rec.CustomerEmail),
		CustomerPhone:  rec.CustomerPhone,
		CakeType:       rec.CakeType,
		EventType:      deref(rec.EventType),
		EventDate:      rec.EventDate,
		Servings:       rec.Servings,
		Budget:         deref(rec.Budget),
		RequestDetails: deref(rec.RequestDetails),
	}
}

// clientIP resolves the submitter's address from proxy headers. When no
// header is present every caller shares the "unknown" bucket; that is an
// accepted limitation of the shared sentinel, not a bug.
func clientIP(header http.Header) string {
	if fwd := header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	if real := header.Get("X-Real-Ip"); real != "" {
		return real
	}
	return "unknown"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
