// service/usage_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jupiterai/jupiterctl/client"
	logger "github.com/jupiterai/jupiterctl/logging"
	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/pricing"
)

// Overview is everything the dashboard screen shows at once.
type Overview struct {
	Dashboard           *model.DashboardSummary
	Limits              *model.Limits
	UnreadNotifications int

	// MonthToDateCost sums the per-model month-to-date breakdown;
	// ProjectedMonthCost extrapolates it linearly to the end of the month.
	MonthToDateCost    float64
	ProjectedMonthCost float64
}

// IUsageService defines the interface for usage analytics operations
type IUsageService interface {
	Overview(ctx context.Context) (*Overview, error)
	History(ctx context.Context, days int) ([]model.UsageHistoryPoint, error)
	Monthly(ctx context.Context) ([]model.MonthlySummary, error)
}

// UsageService aggregates the usage analytics screens
type UsageService struct {
	usage     client.Usage
	discounts client.Discounts
	now       func() time.Time
}

var _ IUsageService = &UsageService{}

// NewUsageService creates a new instance of UsageService
func NewUsageService(usage client.Usage, discounts client.Discounts) *UsageService {
	return &UsageService{usage: usage, discounts: discounts, now: time.Now}
}

// Overview fetches the dashboard summary, subscription limits and unread
// notification count concurrently. One failed fetch fails the whole overview;
// a partially rendered dashboard would be misleading.
func (s *UsageService) Overview(ctx context.Context) (*Overview, error) {
	var overview Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dashboard, err := s.usage.Dashboard(gctx)
		if err != nil {
			return err
		}
		overview.Dashboard = dashboard
		return nil
	})
	g.Go(func() error {
		limits, err := s.usage.Limits(gctx)
		if err != nil {
			return err
		}
		overview.Limits = limits
		return nil
	})
	g.Go(func() error {
		count, err := s.discounts.UnreadNotificationCount(gctx)
		if err != nil {
			return err
		}
		overview.UnreadNotifications = count
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("Error building dashboard overview", zap.Error(err))
		return nil, err
	}

	for _, m := range overview.Dashboard.ModelWiseSummary {
		overview.MonthToDateCost += m.TotalCost
	}
	overview.ProjectedMonthCost = pricing.ProjectMonthEnd(overview.MonthToDateCost, s.now())

	return &overview, nil
}

// History retrieves the daily usage series for the last N days
func (s *UsageService) History(ctx context.Context, days int) ([]model.UsageHistoryPoint, error) {
	points, err := s.usage.UsageHistory(ctx, days)
	if err != nil {
		logger.Error("Error retrieving usage history", zap.Error(err), zap.Int("days", days))
		return nil, err
	}
	return points, nil
}

// Monthly retrieves the per-month usage summaries
func (s *UsageService) Monthly(ctx context.Context) ([]model.MonthlySummary, error) {
	summaries, err := s.usage.MonthlySummaries(ctx)
	if err != nil {
		logger.Error("Error retrieving monthly summaries", zap.Error(err))
		return nil, err
	}
	return summaries, nil
}
