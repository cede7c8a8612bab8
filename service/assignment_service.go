// service/assignment_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/client"
	jerrors "github.com/jupiterai/jupiterctl/errors"
	logger "github.com/jupiterai/jupiterctl/logging"
	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/reconcile"
	"github.com/jupiterai/jupiterctl/util"
)

// IAssignmentService defines the interface for assignment operations
type IAssignmentService interface {
	List(ctx context.Context, filter model.AssignmentFilter) ([]model.Assignment, error)
	Get(ctx context.Context, id int64) (*model.Assignment, error)
	UserGrants(ctx context.Context, userID int64) ([]model.Assignment, map[int64]reconcile.DesiredGrant, error)
	PlanGrants(ctx context.Context, userID int64, desired map[int64]reconcile.DesiredGrant) ([]reconcile.Operation, error)
	ApplyGrants(ctx context.Context, userID int64, desired map[int64]reconcile.DesiredGrant) (reconcile.Summary, error)
	BulkAssign(ctx context.Context, userIDs, modelIDs []int64, tmpl model.AssignmentCreate) (reconcile.Summary, error)
	Revoke(ctx context.Context, userID, modelID int64) error
	Stats(ctx context.Context) (*model.AssignmentStats, error)
}

// AssignmentService handles business logic for user-model assignments. The
// grant editor flow runs through it: seed from fresh assignments, edit, plan,
// apply, report per-item results.
type AssignmentService struct {
	api            client.Assignments
	applier        *reconcile.Applier
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IAssignmentService = &AssignmentService{}

// NewAssignmentService creates a new instance of AssignmentService
func NewAssignmentService(api client.Assignments, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *AssignmentService {
	return &AssignmentService{
		api:            api,
		applier:        reconcile.NewApplier(api, logger.Log),
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// List retrieves assignments matching the filter
func (s *AssignmentService) List(ctx context.Context, filter model.AssignmentFilter) ([]model.Assignment, error) {
	assignments, err := s.api.ListAssignments(ctx, filter)
	if err != nil {
		logger.Error("Error listing assignments", zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

// Get retrieves a single assignment by id
func (s *AssignmentService) Get(ctx context.Context, id int64) (*model.Assignment, error) {
	assignment, err := s.api.GetAssignment(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, jerrors.ErrAssignmentNotFound
		}
		logger.Error("Error retrieving assignment", zap.Error(err), zap.Int64("assignmentID", id))
		return nil, err
	}
	return assignment, nil
}

// UserGrants fetches one user's assignments and seeds the desired grant set
// the editor starts from. The fetch is always fresh; no cached view is ever
// used as a reconcile baseline.
func (s *AssignmentService) UserGrants(ctx context.Context, userID int64) ([]model.Assignment, map[int64]reconcile.DesiredGrant, error) {
	existing, err := s.api.UserAssignments(ctx, userID)
	if err != nil {
		logger.Error("Error fetching user assignments", zap.Error(err), zap.Int64("userID", userID))
		return nil, nil, err
	}
	return existing, reconcile.SeedDesired(existing), nil
}

// PlanGrants validates the desired set and returns the operations an apply
// would issue, without writing anything.
func (s *AssignmentService) PlanGrants(ctx context.Context, userID int64, desired map[int64]reconcile.DesiredGrant) ([]reconcile.Operation, error) {
	if err := s.validationUtil.ValidateGrants(desired); err != nil {
		return nil, fmt.Errorf("%w: %v", jerrors.ErrInvalidGrant, err)
	}

	existing, err := s.api.UserAssignments(ctx, userID)
	if err != nil {
		logger.Error("Error fetching user assignments", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}

	return reconcile.Plan(userID, existing, desired), nil
}

// ApplyGrants validates, plans against a fresh fetch and applies the plan.
// Every operation is attempted; a partial failure surfaces as ErrPartialApply
// alongside the full per-item summary.
func (s *AssignmentService) ApplyGrants(ctx context.Context, userID int64, desired map[int64]reconcile.DesiredGrant) (reconcile.Summary, error) {
	if err := s.validationUtil.ValidateGrants(desired); err != nil {
		return reconcile.Summary{}, fmt.Errorf("%w: %v", jerrors.ErrInvalidGrant, err)
	}

	existing, err := s.api.UserAssignments(ctx, userID)
	if err != nil {
		logger.Error("Error fetching user assignments", zap.Error(err), zap.Int64("userID", userID))
		return reconcile.Summary{}, err
	}

	ops := reconcile.Plan(userID, existing, desired)
	if len(ops) == 0 {
		logger.Info("Assignments already match desired grants", zap.Int64("userID", userID))
		return reconcile.Summary{}, nil
	}

	summary := s.applier.Apply(ctx, ops)

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, util.EventAssignmentApplied, summary)

	if summary.Failed > 0 {
		return summary, fmt.Errorf("%w: %v", jerrors.ErrPartialApply, summary.Err())
	}

	logger.Info("Grants applied successfully",
		zap.Int64("userID", userID),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("deactivated", summary.Deactivated))
	return summary, nil
}

// BulkAssign grants every selected model to every selected user with a shared
// template, one create per pair. Pairs that already hold an active assignment
// fail individually and never block the rest of the batch.
func (s *AssignmentService) BulkAssign(ctx context.Context, userIDs, modelIDs []int64, tmpl model.AssignmentCreate) (reconcile.Summary, error) {
	if err := s.validationUtil.ValidateBulkSelection(userIDs, modelIDs); err != nil {
		return reconcile.Summary{}, fmt.Errorf("%w: %v", jerrors.ErrEmptySelection, err)
	}
	if err := s.validationUtil.ValidateTemplate(tmpl); err != nil {
		return reconcile.Summary{}, fmt.Errorf("%w: %v", jerrors.ErrInvalidGrant, err)
	}

	ops := reconcile.BulkPlan(userIDs, modelIDs, tmpl)
	summary := s.applier.Apply(ctx, ops)

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, util.EventBulkAssigned, summary)

	if summary.Failed > 0 {
		return summary, fmt.Errorf("%w: %v", jerrors.ErrPartialApply, summary.Err())
	}

	logger.Info("Bulk assignment completed",
		zap.Int("users", len(userIDs)),
		zap.Int("models", len(modelIDs)),
		zap.Int("created", summary.Created))
	return summary, nil
}

// Revoke deactivates one user's active assignment for one model
func (s *AssignmentService) Revoke(ctx context.Context, userID, modelID int64) error {
	existing, err := s.api.UserAssignments(ctx, userID)
	if err != nil {
		logger.Error("Error fetching user assignments", zap.Error(err), zap.Int64("userID", userID))
		return err
	}

	for _, a := range existing {
		if a.ModelID != modelID || !a.IsActive {
			continue
		}
		if err := s.api.DeactivateAssignment(ctx, a.ID); err != nil {
			logger.Error("Error deactivating assignment", zap.Error(err), zap.Int64("assignmentID", a.ID))
			return err
		}
		logger.Info("Assignment revoked",
			zap.Int64("userID", userID),
			zap.Int64("modelID", modelID),
			zap.Int64("assignmentID", a.ID))
		return nil
	}

	return jerrors.ErrAssignmentNotFound
}

// Stats retrieves the admin assignment overview
func (s *AssignmentService) Stats(ctx context.Context) (*model.AssignmentStats, error) {
	stats, err := s.api.AssignmentStats(ctx)
	if err != nil {
		logger.Error("Error retrieving assignment stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
