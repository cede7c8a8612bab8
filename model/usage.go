// model/usage.go
package model

// ModelUsage is a per-model usage breakdown row.
type ModelUsage struct {
	ModelName     string  `json:"model_name"`
	TotalRequests int64   `json:"total_requests"`
	TotalTokens   int64   `json:"total_tokens"`
	TotalCost     float64 `json:"total_cost"`
}

// DashboardSummary is today's totals plus the month-to-date per-model breakdown.
// SuccessRate is a 0-1 fraction, as everywhere the backend reports one.
type DashboardSummary struct {
	TotalRequests    int64        `json:"total_requests"`
	TotalCost        float64      `json:"total_cost"`
	AvgResponseTime  float64      `json:"avg_response_time"`
	SuccessRate      float64      `json:"success_rate"`
	ModelWiseSummary []ModelUsage `json:"model_wise_summary"`
}

// MonthlySummary aggregates one calendar month ("YYYY-MM") of usage.
type MonthlySummary struct {
	Month            string       `json:"month"`
	TotalRequests    int64        `json:"total_requests"`
	TotalCost        float64      `json:"total_cost"`
	TotalTokens      int64        `json:"total_tokens"`
	SuccessRate      float64      `json:"success_rate"`
	ModelWiseSummary []ModelUsage `json:"model_wise_summary"`
}

// UsageHistoryPoint is one day in the usage history chart data.
type UsageHistoryPoint struct {
	UsageDate     string  `json:"usage_date"`
	TotalRequests int64   `json:"total_requests"`
	TotalCost     float64 `json:"total_cost"`
}

// Limits is the subscription limit snapshot for the current user.
type Limits struct {
	UserID              int64    `json:"user_id"`
	OrganizationName    string   `json:"organization_name,omitempty"`
	SubscriptionTier    string   `json:"subscription_tier,omitempty"`
	MonthlyRequestLimit *int64   `json:"monthly_request_limit"`
	MonthlyTokenLimit   *int64   `json:"monthly_token_limit"`
	MonthlyCostLimit    *float64 `json:"monthly_cost_limit"`
}
