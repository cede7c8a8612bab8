// client/discounts.go
package client

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/model"
)

// Discounts is the discount/enrollment slice of the API. Enrollment is
// additive and user-initiated only; there is no deactivate-on-removal here.
type Discounts interface {
	AvailableDiscounts(ctx context.Context) ([]model.AvailableDiscount, error)
	MyDiscounts(ctx context.Context) ([]model.EnrolledDiscount, error)
	EnrollDiscount(ctx context.Context, discountID int64) error
	Notifications(ctx context.Context, unreadOnly bool) ([]model.Notification, error)
	UnreadNotificationCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) error
}

var _ Discounts = (*Client)(nil)

func (c *Client) AvailableDiscounts(ctx context.Context) ([]model.AvailableDiscount, error) {
	c.log.Debug("available discounts")

	resp, err := c.r().
		SetContext(ctx).
		SetResult([]model.AvailableDiscount{}).
		Get("/discounts/available-discounts")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.AvailableDiscount), nil
}

func (c *Client) MyDiscounts(ctx context.Context) ([]model.EnrolledDiscount, error) {
	c.log.Debug("my discounts")

	resp, err := c.r().
		SetContext(ctx).
		SetResult([]model.EnrolledDiscount{}).
		Get("/discounts/my-discounts")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.EnrolledDiscount), nil
}

func (c *Client) EnrollDiscount(ctx context.Context, discountID int64) error {
	c.log.Debug("enroll discount", zap.Int64("discountID", discountID))

	resp, err := c.r().
		SetContext(ctx).
		Post("/discounts/discounts/" + strconv.FormatInt(discountID, 10) + "/enroll")
	return c.check(resp, err)
}

func (c *Client) Notifications(ctx context.Context, unreadOnly bool) ([]model.Notification, error) {
	c.log.Debug("notifications", zap.Bool("unreadOnly", unreadOnly))

	req := c.r().SetContext(ctx).SetResult([]model.Notification{})
	if unreadOnly {
		req.SetQueryParam("unread_only", "true")
	}
	resp, err := req.Get("/discounts/notifications")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.Notification), nil
}

func (c *Client) UnreadNotificationCount(ctx context.Context) (int, error) {
	c.log.Debug("unread notification count")

	resp, err := c.r().
		SetContext(ctx).
		SetResult(model.UnreadCount{}).
		Get("/discounts/notifications/unread-count")
	if err := c.check(resp, err); err != nil {
		return 0, err
	}
	return resp.Result().(*model.UnreadCount).UnreadCount, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	c.log.Debug("mark notification read", zap.Int64("id", id))

	resp, err := c.r().
		SetContext(ctx).
		Put("/discounts/notifications/" + strconv.FormatInt(id, 10) + "/mark-read")
	return c.check(resp, err)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	c.log.Debug("mark all notifications read")

	resp, err := c.r().
		SetContext(ctx).
		Put("/discounts/notifications/mark-all-read")
	return c.check(resp, err)
}
