// model/billing.go
package model

// Bill statuses as the billing API reports them.
const (
	BillPaid   = "paid"
	BillUnpaid = "unpaid"
)

// Bill is one monthly billing summary row.
type Bill struct {
	ID    int64 `json:"id"`
	Year  int   `json:"year"`
	Month int   `json:"month"`

	TotalRequests int64 `json:"total_requests,omitempty"`
	TotalTokens   int64 `json:"total_tokens,omitempty"`

	UsageCost        float64 `json:"usage_cost,omitempty"`
	SubscriptionCost float64 `json:"subscription_cost,omitempty"`
	TotalDiscount    float64 `json:"total_discount,omitempty"`
	TotalCost        float64 `json:"total_cost"`

	Status         string `json:"status"`
	InvoiceURL     string `json:"invoice_url,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	PaymentDueDate string `json:"payment_due_date,omitempty"`
	PaidAt         string `json:"paid_at,omitempty"`
}

// Paid reports whether the bill has been settled.
func (b Bill) Paid() bool { return b.Status == BillPaid }

// CheckoutRequest asks the backend to open a Stripe checkout session
// for one unpaid bill.
type CheckoutRequest struct {
	BillID int64 `json:"bill_id"`
}

// CheckoutSession carries the hosted payment page URL back to the caller.
type CheckoutSession struct {
	CheckoutURL string `json:"checkout_url"`
}
