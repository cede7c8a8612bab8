// model/user.go
package model

import "time"

// User is a billed account as the admin API reports it.
type User struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	FullName         string `json:"full_name,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	IsActive         bool   `json:"is_active"`
	SubscriptionTier string `json:"subscription_tier,omitempty"`
	EmailVerified    bool   `json:"email_verified"`

	MonthlyRequestLimit *int64   `json:"monthly_request_limit"`
	MonthlyTokenLimit   *int64   `json:"monthly_token_limit"`
	MonthlyCostLimit    *float64 `json:"monthly_cost_limit"`

	CreatedAt time.Time `json:"created_at"`
}

// UserUpdate is the partial-update payload for PUT /admin/users/{id}.
type UserUpdate struct {
	FullName            *string  `json:"full_name,omitempty"`
	OrganizationName    *string  `json:"organization_name,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
	SubscriptionTierID  *int64   `json:"subscription_tier_id,omitempty"`
	MonthlyRequestLimit *int64   `json:"monthly_request_limit,omitempty"`
	MonthlyTokenLimit   *int64   `json:"monthly_token_limit,omitempty"`
	MonthlyCostLimit    *float64 `json:"monthly_cost_limit,omitempty"`
}
