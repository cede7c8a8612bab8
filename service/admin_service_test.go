// service/admin_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jerrors "github.com/jupiterai/jupiterctl/errors"
	"github.com/jupiterai/jupiterctl/model"
)

type fakeAdminAPI struct {
	summaryCalls [][2]string
	all          []model.AdminBill
	unpaid       []model.AdminBill
	tiers        []model.SubscriptionTier
}

func (f *fakeAdminAPI) UsageSummary(_ context.Context, startDate, endDate string) (*model.AdminUsageSummary, error) {
	f.summaryCalls = append(f.summaryCalls, [2]string{startDate, endDate})
	return &model.AdminUsageSummary{
		GlobalSummary: model.GlobalUsage{TotalRequests: 120},
	}, nil
}

func (f *fakeAdminAPI) BillingOverview(_ context.Context) ([]model.AdminBill, error) {
	return f.all, nil
}

func (f *fakeAdminAPI) UnpaidBillingOverview(_ context.Context) ([]model.AdminBill, error) {
	return f.unpaid, nil
}

func (f *fakeAdminAPI) SubscriptionTiers(_ context.Context) ([]model.SubscriptionTier, error) {
	return f.tiers, nil
}

func TestUsageSummaryPassesWindowThrough(t *testing.T) {
	api := &fakeAdminAPI{}
	svc := NewAdminService(api)

	summary, err := svc.UsageSummary(context.Background(), "2026-08-01", "2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, int64(120), summary.GlobalSummary.TotalRequests)
	require.Len(t, api.summaryCalls, 1)
	assert.Equal(t, [2]string{"2026-08-01", "2026-08-15"}, api.summaryCalls[0])
}

func TestUsageSummaryRejectsMalformedDate(t *testing.T) {
	api := &fakeAdminAPI{}
	svc := NewAdminService(api)

	_, err := svc.UsageSummary(context.Background(), "08/01/2026", "")
	require.ErrorIs(t, err, jerrors.ErrInvalidDateRange)
	assert.Empty(t, api.summaryCalls, "invalid input must not reach the API")
}

func TestUsageSummaryRejectsInvertedWindow(t *testing.T) {
	api := &fakeAdminAPI{}
	svc := NewAdminService(api)

	_, err := svc.UsageSummary(context.Background(), "2026-08-15", "2026-08-01")
	require.ErrorIs(t, err, jerrors.ErrInvalidDateRange)
	assert.Empty(t, api.summaryCalls)
}

func TestBillingOverviewSelectsEndpoint(t *testing.T) {
	api := &fakeAdminAPI{
		all:    []model.AdminBill{{ID: 1, Status: model.BillPaid}, {ID: 2, Status: model.BillUnpaid}},
		unpaid: []model.AdminBill{{ID: 2, Status: model.BillUnpaid}},
	}
	svc := NewAdminService(api)

	all, err := svc.BillingOverview(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	unpaid, err := svc.BillingOverview(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, int64(2), unpaid[0].ID)
}

func TestSubscriptionTiersPassThrough(t *testing.T) {
	api := &fakeAdminAPI{tiers: []model.SubscriptionTier{{ID: 1, Name: "pro", MonthlyCost: 49}}}
	svc := NewAdminService(api)

	tiers, err := svc.SubscriptionTiers(context.Background())
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	assert.Equal(t, "pro", tiers[0].Name)
}
