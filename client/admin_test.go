// client/admin_test.go
package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageSummaryWindowQuery(t *testing.T) {
	c := newTestClient(t, validSession(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/usage-summary", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2026-08-01", q.Get("start_date"))
		assert.Equal(t, "2026-08-15", q.Get("end_date"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"global_summary": {"total_requests": 120, "total_tokens": 9000, "total_cost": 42.5, "avg_response_time": 310.25, "success_rate": 0.975},
			"organization_stats": [{"organization_name": "Acme", "total_requests": 80, "total_tokens": 6000, "total_cost": 30.0, "avg_response_time": 290.0, "success_rate": 1.0, "model_wise_summary": [{"model_name": "gpt-4", "total_requests": 80, "total_tokens": 6000, "total_cost": 30.0}]}],
			"global_model_wise_summary": [{"model_name": "gpt-4", "total_requests": 120, "total_tokens": 9000, "total_cost": 42.5}]
		}`))
	}))

	summary, err := c.UsageSummary(context.Background(), "2026-08-01", "2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, int64(120), summary.GlobalSummary.TotalRequests)
	require.Len(t, summary.OrganizationStats, 1)
	assert.Equal(t, "Acme", summary.OrganizationStats[0].OrganizationName)
	require.Len(t, summary.OrganizationStats[0].ModelWiseSummary, 1)
	require.Len(t, summary.GlobalModelWiseSummary, 1)
	assert.Equal(t, "gpt-4", summary.GlobalModelWiseSummary[0].ModelName)
}

func TestUsageSummaryOmitsEmptyWindow(t *testing.T) {
	c := newTestClient(t, validSession(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		_, hasStart := q["start_date"]
		_, hasEnd := q["end_date"]
		assert.False(t, hasStart, "empty start must not be sent")
		assert.False(t, hasEnd, "empty end must not be sent")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"global_summary":{},"organization_stats":[],"global_model_wise_summary":[]}`))
	}))

	_, err := c.UsageSummary(context.Background(), "", "")
	require.NoError(t, err)
}

func TestBillingOverviewPaths(t *testing.T) {
	c := newTestClient(t, validSession(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/admin/billing/overview":
			w.Write([]byte(`[{"id":1,"organization":"Acme","year":2026,"month":7,"total_cost":19.5,"total_discount":2.0,"status":"paid","paid_date":"2026-08-02"}]`))
		case "/admin/billing/overview/unpaid":
			w.Write([]byte(`[{"id":2,"organization":"Globex","year":2026,"month":8,"total_requests":500,"total_tokens":40000,"usage_cost":12.0,"subscription_cost":5.0,"total_cost":17.0,"status":"unpaid","bill_id":"in_123","payment_due_date":"2026-09-10"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	all, err := c.BillingOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Acme", all[0].Organization)
	assert.Equal(t, "2026-08-02", all[0].PaidDate)

	unpaid, err := c.UnpaidBillingOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, "unpaid", unpaid[0].Status)
	assert.Equal(t, float64(12.0), unpaid[0].UsageCost)
	assert.Equal(t, "in_123", unpaid[0].StripeBillID)
}

func TestSubscriptionTiersDecodePlanDetails(t *testing.T) {
	c := newTestClient(t, validSession(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/subscription-tiers", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"pro","monthly_cost":49.0,"plan_details":{"monthly_request_limit":100000,"support":"priority"}}]`))
	}))

	tiers, err := c.SubscriptionTiers(context.Background())
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	assert.Equal(t, "pro", tiers[0].Name)
	assert.Equal(t, 49.0, tiers[0].MonthlyCost)
	assert.Equal(t, "priority", tiers[0].PlanDetails["support"])
}
