// client/users.go
package client

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/model"
)

// Users is the user-administration slice of the admin API. The backend only
// exposes the list and the update; single-user reads are derived from the list.
type Users interface {
	ListUsers(ctx context.Context, skip, limit int) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, in model.UserUpdate) (*model.User, error)
}

var _ Users = (*Client)(nil)

func (c *Client) ListUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	c.log.Debug("list users", zap.Int("skip", skip), zap.Int("limit", limit))

	req := c.r().SetContext(ctx).SetResult([]model.User{})
	if skip > 0 {
		req.SetQueryParam("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/admin/users")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.User), nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, in model.UserUpdate) (*model.User, error) {
	c.log.Debug("update user", zap.Int64("id", id))

	resp, err := c.r().
		SetContext(ctx).
		SetBody(in).
		SetResult(model.User{}).
		Put("/admin/users/" + strconv.FormatInt(id, 10))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.User), nil
}
