// pricing/estimate.go

// Package pricing holds the client-side arithmetic the dashboard shows:
// request cost estimates, effective cost after overrides and discounts, and
// discount-tier progress. Authoritative billing happens server-side; these
// numbers exist for display only.
package pricing

import (
	"time"

	"github.com/jupiterai/jupiterctl/model"
)

// RequestCost estimates what one request against a model costs before any
// per-assignment override, following the model's cost calculation type.
func RequestCost(m model.AIModel, inputTokens, outputTokens int64) float64 {
	if m.CostCalculationType == model.CostByRequest {
		return m.RequestCost
	}
	in := float64(inputTokens) / 1000 * m.InputCostPer1KTokens
	out := float64(outputTokens) / 1000 * m.OutputCostPer1KTokens
	return in + out
}

// EffectiveCost applies an assignment's custom pricing and discount to a base
// request cost. Custom per-request pricing replaces the base cost entirely;
// the discount percentage then comes off the result, floored at zero.
func EffectiveCost(a model.Assignment, baseCost float64) float64 {
	cost := baseCost
	if a.CustomPricingEnabled && a.CustomCostPerRequest != nil {
		cost = *a.CustomCostPerRequest
	}
	cost -= cost * a.DiscountPercentage / 100
	if cost < 0 {
		return 0
	}
	return cost
}

// ProjectMonthEnd extrapolates month-to-date spend linearly to a full month.
// Day one returns the spend unchanged rather than projecting from zero days.
func ProjectMonthEnd(monthToDate float64, now time.Time) float64 {
	daysElapsed := now.Day()
	if daysElapsed < 1 {
		daysElapsed = 1
	}
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return monthToDate / float64(daysElapsed) * float64(daysInMonth)
}
