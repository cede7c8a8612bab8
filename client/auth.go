// client/auth.go
package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/model"
)

const loginPath = "/admin/token"

// Auth is the login slice of the API.
type Auth interface {
	Login(ctx context.Context, username, password string) (*model.TokenResponse, error)
}

var _ Auth = (*Client)(nil)

// Login exchanges credentials for a bearer token. The endpoint takes form
// data (OAuth2 password flow), not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	c.log.Debug("login", zap.String("username", username))

	resp, err := c.r().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(model.TokenResponse{}).
		Post(loginPath)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.TokenResponse), nil
}
