// client/assignments.go
package client

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/model"
)

// Assignments is the model-assignment slice of the admin API.
type Assignments interface {
	ListAssignments(ctx context.Context, filter model.AssignmentFilter) ([]model.Assignment, error)
	GetAssignment(ctx context.Context, id int64) (*model.Assignment, error)
	CreateAssignment(ctx context.Context, in model.AssignmentCreate) (*model.Assignment, error)
	UpdateAssignment(ctx context.Context, id int64, in model.AssignmentUpdate) (*model.Assignment, error)
	DeactivateAssignment(ctx context.Context, id int64) error
	BulkCreateAssignments(ctx context.Context, in model.BulkAssignmentCreate) (*model.BulkAssignmentResult, error)
	AssignmentStats(ctx context.Context) (*model.AssignmentStats, error)
	UserAssignments(ctx context.Context, userID int64) ([]model.Assignment, error)
}

var _ Assignments = (*Client)(nil)

func (c *Client) ListAssignments(ctx context.Context, filter model.AssignmentFilter) ([]model.Assignment, error) {
	c.log.Debug("list assignments")

	req := c.r().SetContext(ctx).SetResult([]model.Assignment{})
	if filter.UserID != nil {
		req.SetQueryParam("user_id", strconv.FormatInt(*filter.UserID, 10))
	}
	if filter.ModelID != nil {
		req.SetQueryParam("model_id", strconv.FormatInt(*filter.ModelID, 10))
	}
	if filter.IsActive != nil {
		req.SetQueryParam("is_active", strconv.FormatBool(*filter.IsActive))
	}
	if filter.AccessLevel != "" {
		req.SetQueryParam("access_level", filter.AccessLevel)
	}
	if filter.Skip > 0 {
		req.SetQueryParam("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}

	resp, err := req.Get("/admin/model-assignments")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]model.Assignment), nil
}

func (c *Client) GetAssignment(ctx context.Context, id int64) (*model.Assignment, error) {
	c.log.Debug("get assignment", zap.Int64("id", id))

	resp, err := c.r().
		SetContext(ctx).
		SetResult(model.Assignment{}).
		Get("/admin/model-assignments/" + strconv.FormatInt(id, 10))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.Assignment), nil
}

func (c *Client) CreateAssignment(ctx context.Context, in model.AssignmentCreate) (*model.Assignment, error) {
	c.log.Debug("create assignment",
		zap.Int64("userID", in.UserID),
		zap.Int64("modelID", in.ModelID),
		zap.String("access", in.AccessLevel))

	resp, err := c.r().
		SetContext(ctx).
		SetBody(in).
		SetResult(model.Assignment{}).
		Post("/admin/model-assignments")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.Assignment), nil
}

func (c *Client) UpdateAssignment(ctx context.Context, id int64, in model.AssignmentUpdate) (*model.Assignment, error) {
	c.log.Debug("update assignment", zap.Int64("id", id))

	resp, err := c.r().
		SetContext(ctx).
		SetBody(in).
		SetResult(model.Assignment{}).
		Put("/admin/model-assignments/" + strconv.FormatInt(id, 10))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.Assignment), nil
}

// DeactivateAssignment soft-deletes an assignment. The backend also supports
// ?permanent=true; the client deliberately never sends it.
func (c *Client) DeactivateAssignment(ctx context.Context, id int64) error {
	c.log.Debug("deactivate assignment", zap.Int64("id", id))

	resp, err := c.r().
		SetContext(ctx).
		Delete("/admin/model-assignments/" + strconv.FormatInt(id, 10))
	return c.check(resp, err)
}

func (c *Client) BulkCreateAssignments(ctx context.Context, in model.BulkAssignmentCreate) (*model.BulkAssignmentResult, error) {
	c.log.Debug("bulk create assignments",
		zap.Int("users", len(in.UserIDs)),
		zap.Int("models", len(in.ModelIDs)))

	resp, err := c.r().
		SetContext(ctx).
		SetBody(in).
		SetResult(model.BulkAssignmentResult{}).
		Post("/admin/model-assignments/bulk")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.BulkAssignmentResult), nil
}

func (c *Client) AssignmentStats(ctx context.Context) (*model.AssignmentStats, error) {
	c.log.Debug("assignment stats")

	resp, err := c.r().
		SetContext(ctx).
		SetResult(model.AssignmentStats{}).
		Get("/admin/model-assignments/stats/overview")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return resp.Result().(*model.AssignmentStats), nil
}

// UserAssignments lists every assignment of one user, active or not. The
// reconciler needs the inactive ones to find update targets.
func (c *Client) UserAssignments(ctx context.Context, userID int64) ([]model.Assignment, error) {
	c.log.Debug("user assignments", zap.Int64("userID", userID))

	userParam := userID
	return c.ListAssignments(ctx, model.AssignmentFilter{UserID: &userParam})
}
