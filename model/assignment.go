// model/assignment.go
package model

import "time"

// Access levels accepted by the backend for a user-model assignment.
const (
	AccessReadOnly  = "read_only"
	AccessReadWrite = "read_write"
	AccessAdmin     = "admin"
)

// AccessLevels lists every access level the backend accepts.
var AccessLevels = []string{AccessReadOnly, AccessReadWrite, AccessAdmin}

// Assignment is a server-persisted grant of one user's access to one AI model.
// The usage counters are maintained server-side and are read-only here.
type Assignment struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"user_id"`
	ModelID int64 `json:"model_id"`

	IsActive    bool   `json:"is_active"`
	AccessLevel string `json:"access_level"`

	DailyRequestLimit   *int64   `json:"daily_request_limit"`
	MonthlyRequestLimit *int64   `json:"monthly_request_limit"`
	DailyTokenLimit     *int64   `json:"daily_token_limit"`
	MonthlyTokenLimit   *int64   `json:"monthly_token_limit"`
	DailyCostLimit      *float64 `json:"daily_cost_limit"`
	MonthlyCostLimit    *float64 `json:"monthly_cost_limit"`

	RequestsPerMinute int `json:"requests_per_minute"`
	RequestsPerHour   int `json:"requests_per_hour"`

	CustomPricingEnabled bool     `json:"custom_pricing_enabled"`
	CustomCostPerToken   *float64 `json:"custom_cost_per_token"`
	CustomCostPerRequest *float64 `json:"custom_cost_per_request"`
	DiscountPercentage   float64  `json:"discount_percentage"`

	TotalRequestsMade int64      `json:"total_requests_made"`
	TotalTokensUsed   int64      `json:"total_tokens_used"`
	TotalCostIncurred float64    `json:"total_cost_incurred"`
	LastUsedAt        *time.Time `json:"last_used_at"`

	AssignedAt       time.Time  `json:"assigned_at"`
	ExpiresAt        *time.Time `json:"expires_at"`
	AssignmentReason string     `json:"assignment_reason,omitempty"`
	Notes            string     `json:"notes,omitempty"`

	// Denormalized by the backend for display.
	UserEmail        string `json:"user_email,omitempty"`
	UserOrganization string `json:"user_organization,omitempty"`
	ModelName        string `json:"model_name,omitempty"`
	ModelProvider    string `json:"model_provider,omitempty"`
}

// Expired reports whether the assignment has a past expiry timestamp.
func (a Assignment) Expired() bool {
	return a.ExpiresAt != nil && a.ExpiresAt.Before(time.Now().UTC())
}

// AssignmentCreate is the payload for POST /admin/model-assignments.
type AssignmentCreate struct {
	UserID  int64 `json:"user_id"`
	ModelID int64 `json:"model_id"`

	AccessLevel string `json:"access_level"`

	DailyRequestLimit   *int64   `json:"daily_request_limit,omitempty"`
	MonthlyRequestLimit *int64   `json:"monthly_request_limit,omitempty"`
	DailyTokenLimit     *int64   `json:"daily_token_limit,omitempty"`
	MonthlyTokenLimit   *int64   `json:"monthly_token_limit,omitempty"`
	DailyCostLimit      *float64 `json:"daily_cost_limit,omitempty"`
	MonthlyCostLimit    *float64 `json:"monthly_cost_limit,omitempty"`

	RequestsPerMinute int `json:"requests_per_minute,omitempty"`
	RequestsPerHour   int `json:"requests_per_hour,omitempty"`

	CustomPricingEnabled bool     `json:"custom_pricing_enabled,omitempty"`
	CustomCostPerToken   *float64 `json:"custom_cost_per_token,omitempty"`
	CustomCostPerRequest *float64 `json:"custom_cost_per_request,omitempty"`
	DiscountPercentage   float64  `json:"discount_percentage,omitempty"`

	ExpiresInDays    *int   `json:"expires_in_days,omitempty"`
	AssignmentReason string `json:"assignment_reason,omitempty"`
}

// AssignmentUpdate is the payload for PUT /admin/model-assignments/{id}.
// Every field is a pointer so that unset fields are omitted and the backend
// applies a partial update.
type AssignmentUpdate struct {
	AccessLevel *string `json:"access_level,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`

	DailyRequestLimit   *int64   `json:"daily_request_limit,omitempty"`
	MonthlyRequestLimit *int64   `json:"monthly_request_limit,omitempty"`
	DailyTokenLimit     *int64   `json:"daily_token_limit,omitempty"`
	MonthlyTokenLimit   *int64   `json:"monthly_token_limit,omitempty"`
	DailyCostLimit      *float64 `json:"daily_cost_limit,omitempty"`
	MonthlyCostLimit    *float64 `json:"monthly_cost_limit,omitempty"`

	RequestsPerMinute *int `json:"requests_per_minute,omitempty"`
	RequestsPerHour   *int `json:"requests_per_hour,omitempty"`

	CustomPricingEnabled *bool    `json:"custom_pricing_enabled,omitempty"`
	CustomCostPerToken   *float64 `json:"custom_cost_per_token,omitempty"`
	CustomCostPerRequest *float64 `json:"custom_cost_per_request,omitempty"`
	DiscountPercentage   *float64 `json:"discount_percentage,omitempty"`

	ExpiresInDays    *int    `json:"expires_in_days,omitempty"`
	AssignmentReason *string `json:"assignment_reason,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// AssignmentFilter narrows GET /admin/model-assignments.
type AssignmentFilter struct {
	UserID      *int64
	ModelID     *int64
	IsActive    *bool
	AccessLevel string
	Skip        int
	Limit       int
}

// BulkAssignmentCreate is the payload for POST /admin/model-assignments/bulk.
type BulkAssignmentCreate struct {
	UserIDs  []int64          `json:"user_ids"`
	ModelIDs []int64          `json:"model_ids"`
	Template AssignmentCreate `json:"assignment_template"`
}

// BulkAssignmentItem identifies one (user, model) pair in a bulk response.
type BulkAssignmentItem struct {
	UserID  int64  `json:"user_id"`
	ModelID int64  `json:"model_id"`
	Error   string `json:"error,omitempty"`
}

// BulkAssignmentResult is the backend's summary of a bulk create.
type BulkAssignmentResult struct {
	CreatedCount int                  `json:"created_count"`
	FailedCount  int                  `json:"failed_count"`
	Created      []BulkAssignmentItem `json:"created_assignments"`
	Failed       []BulkAssignmentItem `json:"failed_assignments"`
}

// AssignmentStats is the admin overview from /admin/model-assignments/stats/overview.
type AssignmentStats struct {
	TotalAssignments     int64   `json:"total_assignments"`
	ActiveAssignments    int64   `json:"active_assignments"`
	ExpiredAssignments   int64   `json:"expired_assignments"`
	UsersWithAssignments int64   `json:"users_with_assignments"`
	ModelsAssigned       int64   `json:"models_assigned"`
	TotalUsageCost       float64 `json:"total_usage_cost"`
}
