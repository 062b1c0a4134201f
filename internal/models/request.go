package models

// NotificationPayload is the body of the service-to-service notification
// endpoints. The submission orchestrator builds the same payload in-process
// when it dispatches emails after a successful insert.
type NotificationPayload struct {
	OrderID        string `json:"orderId"`
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	CustomerPhone  string `json:"customerPhone"`
	CakeType       string `json:"cakeType"`
	EventType      string `json:"eventType"`
	EventDate      string `json:"eventDate"`
	Servings       *int   `json:"servings"`
	Budget         string `json:"budget"`
	RequestDetails string `json:"requestDetails"`
	// NotificationType is only used by the legacy SMTP endpoint
	// ("order_confirmed" selects the confirmation subject line).
	NotificationType string `json:"notificationType,omitempty"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

type OrderInput struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail *string `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	CakeType      string  `json:"cake_type" binding:"required"`
	EventType     *string `json:"event_type"`
	EventDate     string  `json:"event_date" binding:"required"`
	Servings      *int    `json:"servings"`
	OrderNotes    *string `json:"order_notes"`
	Status        string  `json:"status"`
	DepositAmount float64 `json:"deposit_amount"`
	TotalAmount   float64 `json:"total_amount"`
}

type PaymentInput struct {
	OrderID       string  `json:"order_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentType   string  `json:"payment_type" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Notes         *string `json:"notes"`
	PaymentDate   string  `json:"payment_date" binding:"required"`
}

type SupplyInput struct {
	Name              string  `json:"name" binding:"required"`
	Category          string  `json:"category" binding:"required"`
	Unit              string  `json:"unit" binding:"required"`
	UnitPrice         float64 `json:"unit_price"`
	CurrentStock      float64 `json:"current_stock"`
	LowStockThreshold float64 `json:"low_stock_threshold"`
}

type OrderSupplyInput struct {
	SupplyID string  `json:"supply_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

type InventoryItemInput struct {
	ItemName string  `json:"item_name" binding:"required"`
	Priority *string `json:"priority"`
	Notes    *string `json:"notes"`
}

type MenuItemInput struct {
	Category     string  `json:"category" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	Price        string  `json:"price" binding:"required"`
	IsAvailable  *bool   `json:"is_available"`
	DisplayOrder int     `json:"display_order"`
}

type SeasonalSpecialInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
	StartsOn    *string `json:"starts_on"`
	EndsOn      *string `json:"ends_on"`
}

type CalendarEventInput struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	EventDate   string  `json:"event_date" binding:"required"`
	EventTime   *string `json:"event_time"`
	EventType   string  `json:"event_type"`
	Color       string  `json:"color"`
}

type SettingInput struct {
	SettingValue string `json:"setting_value" binding:"required"`
}
