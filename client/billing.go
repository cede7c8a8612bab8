// client/billing.go
package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/model"
)

// Billing is the monthly-bills and payment slice of the API.
type Billing interface {
	ListBills(ctx context.Context) ([]model.Bill, error)
	CreateCheckoutSession(ctx context.Context, billID int64) (*model.CheckoutSession, error)
}

var _ Billing = (*Client)(nil)

func (c *Client) ListBills(ctx context.Context) ([]model.Bill, error) {
	c.log.Debug("list bills")

	resp, err := c.r().
		SetContext(ctx).
		SetResult([]model.Bill{}).
		Get("/billing/")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.Bill), nil
}

// CreateCheckoutSession asks the backend to open a Stripe checkout for one
// unpaid bill and returns the hosted payment URL. Stripe itself is the
// backend's business; the client only relays the URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, billID int64) (*model.CheckoutSession, error) {
	c.log.Debug("create checkout session", zap.Int64("billID", billID))

	resp, err := c.r().
		SetContext(ctx).
		SetBody(model.CheckoutRequest{BillID: billID}).
		SetResult(model.CheckoutSession{}).
		Post("/stripe/create-checkout-session")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.CheckoutSession), nil
}
