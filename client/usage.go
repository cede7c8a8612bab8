// client/usage.go
package client

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/model"
)

// Usage is the analytics slice of the API.
type Usage interface {
	Dashboard(ctx context.Context) (*model.DashboardSummary, error)
	UsageHistory(ctx context.Context, days int) ([]model.UsageHistoryPoint, error)
	MonthlySummaries(ctx context.Context) ([]model.MonthlySummary, error)
	Limits(ctx context.Context) (*model.Limits, error)
}

var _ Usage = (*Client)(nil)

func (c *Client) Dashboard(ctx context.Context) (*model.DashboardSummary, error) {
	c.log.Debug("dashboard summary")

	resp, err := c.r().
		SetContext(ctx).
		SetResult(model.DashboardSummary{}).
		Get("/dashboard/")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.DashboardSummary), nil
}

func (c *Client) UsageHistory(ctx context.Context, days int) ([]model.UsageHistoryPoint, error) {
	c.log.Debug("usage history", zap.Int("days", days))

	resp, err := c.r().
		SetContext(ctx).
		SetQueryParam("days", strconv.Itoa(days)).
		SetResult([]model.UsageHistoryPoint{}).
		Get("/dashboard/usage-history")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.UsageHistoryPoint), nil
}

func (c *Client) MonthlySummaries(ctx context.Context) ([]model.MonthlySummary, error) {
	c.log.Debug("monthly summaries")

	resp, err := c.r().
		SetContext(ctx).
		SetResult([]model.MonthlySummary{}).
		Get("/usage/")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.MonthlySummary), nil
}

func (c *Client) Limits(ctx context.Context) (*model.Limits, error) {
	c.log.Debug("limits")

	resp, err := c.r().
		SetContext(ctx).
		SetResult(model.Limits{}).
		Get("/limits/")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.Limits), nil
}
