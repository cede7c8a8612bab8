// client/models.go
package client

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/model"
)

// Models is the AI model catalog slice of the admin API.
type Models interface {
	ListModels(ctx context.Context) ([]model.AIModel, error)
	GetModel(ctx context.Context, id int64) (*model.AIModel, error)
}

var _ Models = (*Client)(nil)

func (c *Client) ListModels(ctx context.Context) ([]model.AIModel, error) {
	c.log.Debug("list models")

	resp, err := c.r().
		SetContext(ctx).
		SetResult([]model.AIModel{}).
		Get("/admin/models")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.AIModel), nil
}

func (c *Client) GetModel(ctx context.Context, id int64) (*model.AIModel, error) {
	c.log.Debug("get model", zap.Int64("id", id))

	resp, err := c.r().
		SetContext(ctx).
		SetResult(model.AIModel{}).
		Get("/admin/models/" + strconv.FormatInt(id, 10))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.AIModel), nil
}
