package supabase

import (
	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

// RealtimeClient notifies the operator dashboard of intake events. Table
// writes already trigger Supabase Realtime through Postgres; explicit
// publishes are a hook for channels that are not table-backed.
type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Dashboard subscriptions listen on postgres_changes for the
	// order_requests and orders tables, so the insert/update itself is the
	// broadcast. Explicit event publishing would go through the Realtime
	// REST API here.
	return nil
}

func (r *RealtimeClient) PublishRequestEvent(requestID uuid.UUID, event string, payload map[string]interface{}) error {
	return r.PublishEvent("order_requests", event, payload)
}

func (r *RealtimeClient) PublishOrderEvent(orderID uuid.UUID, event string, payload map[string]interface{}) error {
	return r.PublishEvent("orders", event, payload)
}

func RequestReceivedPayload(requestID uuid.UUID, customerName string) map[string]interface{} {
	return map[string]interface{}{
		"request_id":    requestID.String(),
		"status":        "new",
		"customer_name": customerName,
	}
}

func RequestConvertedPayload(requestID, orderID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"request_id": requestID.String(),
		"order_id":   orderID.String(),
		"status":     "confirmed",
	}
}
