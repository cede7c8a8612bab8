// service/admin_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/client"
	jerrors "github.com/jupiterai/jupiterctl/errors"
	logger "github.com/jupiterai/jupiterctl/logging"
	"github.com/jupiterai/jupiterctl/model"
)

// IAdminService defines the interface for cross-customer admin reporting
type IAdminService interface {
	UsageSummary(ctx context.Context, startDate, endDate string) (*model.AdminUsageSummary, error)
	BillingOverview(ctx context.Context, unpaidOnly bool) ([]model.AdminBill, error)
	SubscriptionTiers(ctx context.Context) ([]model.SubscriptionTier, error)
}

// AdminService surfaces the admin reporting endpoints. Everything here is
// read-only; the backend owns the aggregation.
type AdminService struct {
	api client.Admin
}

var _ IAdminService = &AdminService{}

// NewAdminService creates a new instance of AdminService
func NewAdminService(api client.Admin) *AdminService {
	return &AdminService{api: api}
}

const reportDateLayout = "2006-01-02"

// UsageSummary retrieves the fleet-wide usage report for the given window.
// Empty dates default to the current month on the backend side.
func (s *AdminService) UsageSummary(ctx context.Context, startDate, endDate string) (*model.AdminUsageSummary, error) {
	start, err := parseReportDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseReportDate(endDate)
	if err != nil {
		return nil, err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, fmt.Errorf("%w: end %s before start %s", jerrors.ErrInvalidDateRange, endDate, startDate)
	}

	summary, err := s.api.UsageSummary(ctx, startDate, endDate)
	if err != nil {
		logger.Error("Error retrieving usage summary", zap.Error(err))
		return nil, err
	}
	return summary, nil
}

// BillingOverview retrieves the per-organization billing rows, optionally
// restricted to bills awaiting payment
func (s *AdminService) BillingOverview(ctx context.Context, unpaidOnly bool) ([]model.AdminBill, error) {
	fetch := s.api.BillingOverview
	if unpaidOnly {
		fetch = s.api.UnpaidBillingOverview
	}
	bills, err := fetch(ctx)
	if err != nil {
		logger.Error("Error retrieving billing overview", zap.Error(err), zap.Bool("unpaidOnly", unpaidOnly))
		return nil, err
	}
	return bills, nil
}

// SubscriptionTiers retrieves the active plans on offer
func (s *AdminService) SubscriptionTiers(ctx context.Context) ([]model.SubscriptionTier, error) {
	tiers, err := s.api.SubscriptionTiers(ctx)
	if err != nil {
		logger.Error("Error retrieving subscription tiers", zap.Error(err))
		return nil, err
	}
	return tiers, nil
}

func parseReportDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(reportDateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", jerrors.ErrInvalidDateRange, v)
	}
	return t, nil
}
