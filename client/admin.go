// client/admin.go
package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/model"
)

// Admin is the cross-customer reporting slice of the API. Every route here
// requires an administrator session.
type Admin interface {
	UsageSummary(ctx context.Context, startDate, endDate string) (*model.AdminUsageSummary, error)
	BillingOverview(ctx context.Context) ([]model.AdminBill, error)
	UnpaidBillingOverview(ctx context.Context) ([]model.AdminBill, error)
	SubscriptionTiers(ctx context.Context) ([]model.SubscriptionTier, error)
}

var _ Admin = (*Client)(nil)

// UsageSummary fetches the fleet-wide usage report. Dates are "YYYY-MM-DD";
// either may be empty, in which case the backend defaults the window to the
// current month.
func (c *Client) UsageSummary(ctx context.Context, startDate, endDate string) (*model.AdminUsageSummary, error) {
	c.log.Debug("admin usage summary",
		zap.String("startDate", startDate),
		zap.String("endDate", endDate))

	req := c.r().
		SetContext(ctx).
		SetResult(model.AdminUsageSummary{})
	if startDate != "" {
		req.SetQueryParam("start_date", startDate)
	}
	if endDate != "" {
		req.SetQueryParam("end_date", endDate)
	}

	resp, err := req.Get("/admin/usage-summary")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.AdminUsageSummary), nil
}

func (c *Client) BillingOverview(ctx context.Context) ([]model.AdminBill, error) {
	c.log.Debug("admin billing overview")

	resp, err := c.r().
		SetContext(ctx).
		SetResult([]model.AdminBill{}).
		Get("/admin/billing/overview")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.AdminBill), nil
}

func (c *Client) UnpaidBillingOverview(ctx context.Context) ([]model.AdminBill, error) {
	c.log.Debug("admin unpaid billing overview")

	resp, err := c.r().
		SetContext(ctx).
		SetResult([]model.AdminBill{}).
		Get("/admin/billing/overview/unpaid")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.AdminBill), nil
}

func (c *Client) SubscriptionTiers(ctx context.Context) ([]model.SubscriptionTier, error) {
	c.log.Debug("subscription tiers")

	resp, err := c.r().
		SetContext(ctx).
		SetResult([]model.SubscriptionTier{}).
		Get("/admin/subscription-tiers")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.SubscriptionTier), nil
}
