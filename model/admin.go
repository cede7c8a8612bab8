// model/admin.go
package model

// GlobalUsage is the fleet-wide aggregate for a reporting window.
type GlobalUsage struct {
	TotalRequests   int64   `json:"total_requests"`
	TotalTokens     int64   `json:"total_tokens"`
	TotalCost       float64 `json:"total_cost"`
	AvgResponseTime float64 `json:"avg_response_time"`
	SuccessRate     float64 `json:"success_rate"`
}

// OrgUsage is one organization's aggregate within a reporting window.
type OrgUsage struct {
	OrganizationName string       `json:"organization_name"`
	TotalRequests    int64        `json:"total_requests"`
	TotalTokens      int64        `json:"total_tokens"`
	TotalCost        float64      `json:"total_cost"`
	AvgResponseTime  float64      `json:"avg_response_time"`
	SuccessRate      float64      `json:"success_rate"`
	ModelWiseSummary []ModelUsage `json:"model_wise_summary"`
}

// AdminUsageSummary is the admin reporting payload: fleet totals, a
// per-organization breakdown, and a fleet-wide per-model breakdown.
type AdminUsageSummary struct {
	GlobalSummary          GlobalUsage  `json:"global_summary"`
	OrganizationStats      []OrgUsage   `json:"organization_stats"`
	GlobalModelWiseSummary []ModelUsage `json:"global_model_wise_summary"`
}

// AdminBill is one row of the cross-customer billing overview. The unpaid
// variant of the endpoint adds the usage and cost breakdown fields; the
// general one leaves them zero.
type AdminBill struct {
	ID           int64  `json:"id"`
	Organization string `json:"organization"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`

	TotalRequests    int64   `json:"total_requests,omitempty"`
	TotalTokens      int64   `json:"total_tokens,omitempty"`
	UsageCost        float64 `json:"usage_cost,omitempty"`
	SubscriptionCost float64 `json:"subscription_cost,omitempty"`
	TotalDiscount    float64 `json:"total_discount,omitempty"`
	TotalCost        float64 `json:"total_cost"`

	Status         string `json:"status"`
	InvoiceURL     string `json:"invoice_url,omitempty"`
	StripeBillID   string `json:"bill_id,omitempty"`
	PaidDate       string `json:"paid_date,omitempty"`
	PaymentDueDate string `json:"payment_due_date,omitempty"`
	GeneratedDate  string `json:"generated_date,omitempty"`
}

// SubscriptionTier is one active plan on offer. PlanDetails is free-form
// JSON describing the tier's limits and extras.
type SubscriptionTier struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	MonthlyCost float64                `json:"monthly_cost"`
	PlanDetails map[string]interface{} `json:"plan_details"`
}
