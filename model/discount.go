// model/discount.go
package model

import "time"

// AvailableDiscount is a discount rule the current user may enroll in,
// together with enrollment eligibility and usage progress toward the tier.
type AvailableDiscount struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	DiscountPercentage float64    `json:"discount_percentage"`
	ModelName          string     `json:"model_name,omitempty"`
	MinRequests        int64      `json:"min_requests"`
	MaxRequests        *int64     `json:"max_requests"`
	ValidUntil         *time.Time `json:"valid_until"`
	ValidityDays       *int       `json:"validity_days"`
	CanEnroll          bool       `json:"can_enroll"`
	UsageProgress      int64      `json:"usage_progress"`
}

// EnrolledDiscount is an enrollment the current user already holds.
type EnrolledDiscount struct {
	ID                 int64      `json:"id"`
	DiscountRuleID     int64      `json:"discount_rule_id"`
	DiscountName       string     `json:"discount_name"`
	DiscountPercentage float64    `json:"discount_percentage"`
	EnrolledAt         time.Time  `json:"enrolled_at"`
	ValidUntil         *time.Time `json:"valid_until"`
	UsageCount         int64      `json:"usage_count"`
	IsActive           bool       `json:"is_active"`
}

// Notification is a discount-system message for the current user.
type Notification struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	NotificationType string    `json:"notification_type"`
	DiscountRuleID   *int64    `json:"discount_rule_id"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`

	DiscountName       string   `json:"discount_name,omitempty"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty"`
}

// UnreadCount is the payload of GET /discounts/notifications/unread-count.
type UnreadCount struct {
	UnreadCount int `json:"unread_count"`
}
