package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jupiterai/jupiterctl/model"
)

func f64(v float64) *float64 { return &v }

func TestRequestCostByTokens(t *testing.T) {
	m := model.AIModel{
		CostCalculationType:   model.CostByTokens,
		InputCostPer1KTokens:  0.5,
		OutputCostPer1KTokens: 1.5,
	}
	// 2000 input tokens -> 1.0, 1000 output tokens -> 1.5
	assert.InDelta(t, 2.5, RequestCost(m, 2000, 1000), 1e-9)
}

func TestRequestCostByRequest(t *testing.T) {
	m := model.AIModel{CostCalculationType: model.CostByRequest, RequestCost: 0.02}
	assert.InDelta(t, 0.02, RequestCost(m, 999999, 999999), 1e-9)
}

func TestEffectiveCostAppliesDiscount(t *testing.T) {
	a := model.Assignment{DiscountPercentage: 25}
	assert.InDelta(t, 0.75, EffectiveCost(a, 1.0), 1e-9)
}

func TestEffectiveCostCustomPricingWins(t *testing.T) {
	a := model.Assignment{
		CustomPricingEnabled: true,
		CustomCostPerRequest: f64(0.10),
		DiscountPercentage:   50,
	}
	assert.InDelta(t, 0.05, EffectiveCost(a, 9.99), 1e-9)
}

func TestEffectiveCostDisabledCustomPricingIsIgnored(t *testing.T) {
	a := model.Assignment{CustomPricingEnabled: false, CustomCostPerRequest: f64(0.10)}
	assert.InDelta(t, 1.0, EffectiveCost(a, 1.0), 1e-9)
}

func TestEffectiveCostNeverNegative(t *testing.T) {
	a := model.Assignment{DiscountPercentage: 100}
	assert.Equal(t, 0.0, EffectiveCost(a, 3.0))
}

func TestProjectMonthEnd(t *testing.T) {
	// 15th of a 30-day month, 10 spent -> 20 projected.
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	assert.InDelta(t, 20.0, ProjectMonthEnd(10, now), 1e-9)

	// First day: projection equals a full month of day one's spend.
	first := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	assert.InDelta(t, 300.0, ProjectMonthEnd(10, first), 1e-9)
}

func TestTierProgress(t *testing.T) {
	max := int64(500)

	cases := []struct {
		name string
		in   model.AvailableDiscount
		want Progress
	}{
		{
			name: "halfway",
			in:   model.AvailableDiscount{MinRequests: 100, UsageProgress: 50},
			want: Progress{Percent: 50, Remaining: 50},
		},
		{
			name: "reached",
			in:   model.AvailableDiscount{MinRequests: 100, UsageProgress: 150},
			want: Progress{Percent: 100, Reached: true},
		},
		{
			name: "no threshold",
			in:   model.AvailableDiscount{MinRequests: 0, UsageProgress: 3},
			want: Progress{Percent: 100, Reached: true},
		},
		{
			name: "over upper bound",
			in:   model.AvailableDiscount{MinRequests: 100, MaxRequests: &max, UsageProgress: 600},
			want: Progress{Percent: 100, Reached: true, Exceeded: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TierProgress(tc.in))
		})
	}
}
