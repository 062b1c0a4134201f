package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type RateLimitedResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// SubmitResponse is returned by the public submission endpoint. The shape
// is identical for genuine and honeypot-trapped submissions.
type SubmitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

type NotifyResponse struct {
	Success          bool `json:"success"`
	BakerNotified    bool `json:"bakerNotified"`
	CustomerNotified bool `json:"customerNotified"`
}

type LegacyNotifyResponse struct {
	OK bool `json:"ok"`
}

type ConvertResponse struct {
	OrderID string `json:"order_id"`
}

type UploadImageResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
}

type RevenueReport struct {
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
	TotalRevenue       float64            `json:"total_revenue"`
	PaymentCount       int                `json:"payment_count"`
	RevenueByMethod    map[string]float64 `json:"revenue_by_method"`
	OutstandingBalance float64            `json:"outstanding_balance"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
