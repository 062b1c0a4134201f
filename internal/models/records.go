package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderRequest lifecycle statuses. The converter is the only automatic
// transition (new -> confirmed); everything else is operator-driven.
const (
	RequestStatusNew       = "new"
	RequestStatusContacted = "contacted"
	RequestStatusConfirmed = "confirmed"
	RequestStatusDeclined  = "declined"
)

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

func ValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusNew, RequestStatusContacted, RequestStatusConfirmed, RequestStatusDeclined:
		return true
	}
	return false
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderRequest struct {
	ID             uuid.UUID `json:"id"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  *string   `json:"customer_email"`
	CustomerPhone  string    `json:"customer_phone"`
	CakeType       string    `json:"cake_type"`
	EventType      *string   `json:"event_type"`
	EventDate      string    `json:"event_date"`
	Servings       *int      `json:"servings"`
	Budget         *string   `json:"budget"`
	RequestDetails *string   `json:"request_details"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RequestImage struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail *string   `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	CakeType      string    `json:"cake_type"`
	EventType     *string   `json:"event_type"`
	EventDate     string    `json:"event_date"`
	Servings      *int      `json:"servings"`
	OrderNotes    *string   `json:"order_notes"`
	Status        string    `json:"status"`
	DepositAmount float64   `json:"deposit_amount"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type VisionImage struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ImageURL  string    `json:"image_url"`
	Caption   *string   `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

type Payment struct {
	ID            uuid.UUID `json:"id"`
	OrderID       uuid.UUID `json:"order_id"`
	Amount        float64   `json:"amount"`
	PaymentType   string    `json:"payment_type"`
	PaymentMethod string    `json:"payment_method"`
	Notes         *string   `json:"notes"`
	PaymentDate   string    `json:"payment_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Supply struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Unit              string    `json:"unit"`
	UnitPrice         float64   `json:"unit_price"`
	CurrentStock      float64   `json:"current_stock"`
	LowStockThreshold float64   `json:"low_stock_threshold"`
	IsLowStock        bool      `json:"is_low_stock"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// OrderSupply links a supply to an order for cost tracking.
type OrderSupply struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	SupplyID   uuid.UUID `json:"supply_id"`
	SupplyName string    `json:"supply_name"`
	Unit       string    `json:"unit"`
	UnitPrice  float64   `json:"unit_price"`
	Quantity   float64   `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}

type InventoryItem struct {
	ID        uuid.UUID `json:"id"`
	ItemName  string    `json:"item_name"`
	IsChecked bool      `json:"is_checked"`
	Priority  *string   `json:"priority"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID           uuid.UUID `json:"id"`
	Category     string    `json:"category"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Price        string    `json:"price"`
	IsAvailable  bool      `json:"is_available"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SeasonalSpecial struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	StartsOn    *string   `json:"starts_on"`
	EndsOn      *string   `json:"ends_on"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CalendarEvent struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	EventDate   string    `json:"event_date"`
	EventTime   *string   `json:"event_time"`
	EventType   string    `json:"event_type"`
	IsCompleted bool      `json:"is_completed"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BusinessSetting struct {
	SettingKey   string    `json:"setting_key"`
	SettingValue string    `json:"setting_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}
