// reconcile/grant.go

// Package reconcile turns an edited set of desired model grants into the
// minimal sequence of backend write operations, and applies such a plan while
// tolerating partial failure. Planning is pure: it knows nothing about HTTP,
// so the same plan code serves the user editor, the bulk admin flow, and the
// tests.
package reconcile

import "github.com/jupiterai/jupiterctl/model"

// DesiredGrant is the transient, in-memory end state for one (user, model)
// pair during an edit session. It is seeded from fetched assignments, mutated
// by the caller, consumed by Plan, and discarded afterwards.
type DesiredGrant struct {
	Included    bool   `toml:"included"`
	AccessLevel string `toml:"access_level" validate:"omitempty,oneof=read_only read_write admin"`

	DailyRequestLimit   *int64   `toml:"daily_request_limit" validate:"omitempty,gte=0"`
	MonthlyRequestLimit *int64   `toml:"monthly_request_limit" validate:"omitempty,gte=0"`
	DailyTokenLimit     *int64   `toml:"daily_token_limit" validate:"omitempty,gte=0"`
	MonthlyTokenLimit   *int64   `toml:"monthly_token_limit" validate:"omitempty,gte=0"`
	DailyCostLimit      *float64 `toml:"daily_cost_limit" validate:"omitempty,gte=0"`
	MonthlyCostLimit    *float64 `toml:"monthly_cost_limit" validate:"omitempty,gte=0"`

	DiscountPercentage float64 `toml:"discount_percentage" validate:"gte=0,lte=100"`
	ExpiresInDays      *int    `toml:"expires_in_days" validate:"omitempty,gt=0"`
	Reason             string  `toml:"reason"`
}

// SeedDesired builds the edit-session starting state from freshly fetched
// assignments. Inactive records seed an excluded grant so their settings
// survive a later re-include.
func SeedDesired(existing []model.Assignment) map[int64]DesiredGrant {
	desired := make(map[int64]DesiredGrant, len(existing))
	for _, a := range existing {
		desired[a.ModelID] = DesiredGrant{
			Included:            a.IsActive,
			AccessLevel:         a.AccessLevel,
			DailyRequestLimit:   a.DailyRequestLimit,
			MonthlyRequestLimit: a.MonthlyRequestLimit,
			DailyTokenLimit:     a.DailyTokenLimit,
			MonthlyTokenLimit:   a.MonthlyTokenLimit,
			DailyCostLimit:      a.DailyCostLimit,
			MonthlyCostLimit:    a.MonthlyCostLimit,
			DiscountPercentage:  a.DiscountPercentage,
			Reason:              a.AssignmentReason,
		}
	}
	return desired
}
