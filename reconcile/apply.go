// reconcile/apply.go
package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/model"
)

// AssignmentWriter is the slice of the API client the applier needs.
type AssignmentWriter interface {
	CreateAssignment(ctx context.Context, in model.AssignmentCreate) (*model.Assignment, error)
	UpdateAssignment(ctx context.Context, id int64, in model.AssignmentUpdate) (*model.Assignment, error)
}

// Result records the outcome of one applied operation.
type Result struct {
	Op  Operation
	Err error
}

// Summary is the per-item result collection for one apply pass. A failed item
// never blocks the remaining items; callers report partial completion instead
// of an opaque failure after N of M operations already succeeded.
type Summary struct {
	Results     []Result
	Created     int
	Updated     int
	Deactivated int
	Failed      int
}

// Err folds the summary into a single error for callers that need one.
func (s Summary) Err() error {
	if s.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d assignment operations failed", s.Failed, len(s.Results))
}

// Applier executes a plan against the backend.
type Applier struct {
	writer AssignmentWriter
	log    *zap.Logger
}

// NewApplier returns an applier writing through the given client slice.
func NewApplier(writer AssignmentWriter, log *zap.Logger) *Applier {
	if log == nil {
		log = zap.L()
	}
	return &Applier{writer: writer, log: log}
}

// Apply issues every operation in order and collects per-item results. Each
// call is independent: operations target distinct assignment ids or records
// that do not exist yet, so no ordering between items is required and one
// failure must not abort the rest.
func (a *Applier) Apply(ctx context.Context, ops []Operation) Summary {
	summary := Summary{Results: make([]Result, 0, len(ops))}

	for _, op := range ops {
		err := a.applyOne(ctx, op)
		summary.Results = append(summary.Results, Result{Op: op, Err: err})
		if err != nil {
			summary.Failed++
			a.log.Warn("assignment operation failed",
				zap.String("op", string(op.Type)),
				zap.Int64("userID", op.UserID),
				zap.Int64("modelID", op.ModelID),
				zap.Error(err))
			continue
		}
		switch op.Type {
		case OpCreate:
			summary.Created++
		case OpUpdate:
			summary.Updated++
		case OpDeactivate:
			summary.Deactivated++
		}
	}

	a.log.Info("assignment plan applied",
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("deactivated", summary.Deactivated),
		zap.Int("failed", summary.Failed))

	return summary
}

func (a *Applier) applyOne(ctx context.Context, op Operation) error {
	switch op.Type {
	case OpCreate:
		_, err := a.writer.CreateAssignment(ctx, *op.Create)
		return err
	case OpUpdate, OpDeactivate:
		_, err := a.writer.UpdateAssignment(ctx, op.AssignmentID, *op.Update)
		return err
	default:
		return fmt.Errorf("unknown operation type %q", op.Type)
	}
}
