// reconcile/plan.go
package reconcile

import (
	"fmt"
	"sort"

	"github.com/jupiterai/jupiterctl/model"
)

// OpType classifies one planned backend write.
type OpType string

const (
	OpCreate     OpType = "create"
	OpUpdate     OpType = "update"
	OpDeactivate OpType = "deactivate"
)

// Operation is one intended backend call. Creates carry a full payload;
// updates and deactivations target an existing assignment id.
type Operation struct {
	Type         OpType
	AssignmentID int64
	UserID       int64
	ModelID      int64
	Create       *model.AssignmentCreate
	Update       *model.AssignmentUpdate
}

func (o Operation) String() string {
	switch o.Type {
	case OpCreate:
		return fmt.Sprintf("create user=%d model=%d access=%s", o.UserID, o.ModelID, o.Create.AccessLevel)
	case OpDeactivate:
		return fmt.Sprintf("deactivate assignment=%d model=%d", o.AssignmentID, o.ModelID)
	default:
		return fmt.Sprintf("update assignment=%d model=%d", o.AssignmentID, o.ModelID)
	}
}

// Plan diffs the desired grant set against the authoritative assignments and
// returns the minimal operations to reach the desired state.
//
//   - included grant + existing record (any active flag): one update that sets
//     it active with the desired fields; never a duplicate create
//   - included grant + no record: one create
//   - active record not included in desired: one deactivate
//   - inactive record not included: nothing (no redundant writes)
//
// The output is ordered deterministically: creates and updates by model id,
// then deactivations by model id. Running Plan against a refreshed existing
// set that already reflects an applied plan yields nil.
func Plan(userID int64, existing []model.Assignment, desired map[int64]DesiredGrant) []Operation {
	byModel := make(map[int64]model.Assignment, len(existing))
	for _, a := range existing {
		// The backend keeps at most one active record per (user, model); if
		// stale duplicates exist, prefer the active one as the update target.
		if cur, ok := byModel[a.ModelID]; !ok || (!cur.IsActive && a.IsActive) {
			byModel[a.ModelID] = a
		}
	}

	modelIDs := make([]int64, 0, len(desired))
	for id := range desired {
		modelIDs = append(modelIDs, id)
	}
	sort.Slice(modelIDs, func(i, j int) bool { return modelIDs[i] < modelIDs[j] })

	var ops []Operation
	for _, modelID := range modelIDs {
		grant := desired[modelID]
		if !grant.Included {
			continue
		}
		if cur, ok := byModel[modelID]; ok {
			upd := grant.update()
			if !needsUpdate(cur, grant) {
				continue
			}
			ops = append(ops, Operation{
				Type:         OpUpdate,
				AssignmentID: cur.ID,
				UserID:       userID,
				ModelID:      modelID,
				Update:       upd,
			})
			continue
		}
		ops = append(ops, Operation{
			Type:    OpCreate,
			UserID:  userID,
			ModelID: modelID,
			Create:  grant.create(userID, modelID),
		})
	}

	var stale []model.Assignment
	for _, a := range byModel {
		if g, ok := desired[a.ModelID]; ok && g.Included {
			continue
		}
		if !a.IsActive {
			continue
		}
		stale = append(stale, a)
	}
	sort.Slice(stale, func(i, j int) bool { return stale[i].ModelID < stale[j].ModelID })
	for _, a := range stale {
		inactive := false
		ops = append(ops, Operation{
			Type:         OpDeactivate,
			AssignmentID: a.ID,
			UserID:       userID,
			ModelID:      a.ModelID,
			Update:       &model.AssignmentUpdate{IsActive: &inactive},
		})
	}

	return ops
}

// BulkPlan expands the cross product of users and models into pure creates.
// Bulk mode is additive only: no existing-assignment lookup happens here, the
// backend rejects duplicates per item and the applier records that as the
// item's failure.
func BulkPlan(userIDs, modelIDs []int64, tmpl model.AssignmentCreate) []Operation {
	ops := make([]Operation, 0, len(userIDs)*len(modelIDs))
	for _, userID := range userIDs {
		for _, modelID := range modelIDs {
			create := tmpl
			create.UserID = userID
			create.ModelID = modelID
			ops = append(ops, Operation{
				Type:    OpCreate,
				UserID:  userID,
				ModelID: modelID,
				Create:  &create,
			})
		}
	}
	return ops
}

// needsUpdate reports whether the existing record differs from the grant.
// An exact match produces no operation, which is what makes Plan idempotent.
func needsUpdate(cur model.Assignment, g DesiredGrant) bool {
	if !cur.IsActive {
		return true
	}
	if g.AccessLevel != "" && g.AccessLevel != cur.AccessLevel {
		return true
	}
	if g.ExpiresInDays != nil {
		return true
	}
	if g.DiscountPercentage != cur.DiscountPercentage {
		return true
	}
	if g.Reason != "" && g.Reason != cur.AssignmentReason {
		return true
	}
	return !eqInt64(cur.DailyRequestLimit, g.DailyRequestLimit) ||
		!eqInt64(cur.MonthlyRequestLimit, g.MonthlyRequestLimit) ||
		!eqInt64(cur.DailyTokenLimit, g.DailyTokenLimit) ||
		!eqInt64(cur.MonthlyTokenLimit, g.MonthlyTokenLimit) ||
		!eqFloat64(cur.DailyCostLimit, g.DailyCostLimit) ||
		!eqFloat64(cur.MonthlyCostLimit, g.MonthlyCostLimit)
}

// update builds the payload that reactivates an existing record and applies
// the desired fields in one write, so a concurrent reader never observes a
// reactivated assignment with stale limits.
func (g DesiredGrant) update() *model.AssignmentUpdate {
	active := true
	upd := &model.AssignmentUpdate{
		IsActive:            &active,
		DailyRequestLimit:   g.DailyRequestLimit,
		MonthlyRequestLimit: g.MonthlyRequestLimit,
		DailyTokenLimit:     g.DailyTokenLimit,
		MonthlyTokenLimit:   g.MonthlyTokenLimit,
		DailyCostLimit:      g.DailyCostLimit,
		MonthlyCostLimit:    g.MonthlyCostLimit,
		ExpiresInDays:       g.ExpiresInDays,
	}
	if g.AccessLevel != "" {
		level := g.AccessLevel
		upd.AccessLevel = &level
	}
	if g.DiscountPercentage != 0 {
		pct := g.DiscountPercentage
		upd.DiscountPercentage = &pct
	}
	if g.Reason != "" {
		reason := g.Reason
		upd.AssignmentReason = &reason
	}
	return upd
}

func (g DesiredGrant) create(userID, modelID int64) *model.AssignmentCreate {
	accessLevel := g.AccessLevel
	if accessLevel == "" {
		accessLevel = model.AccessReadWrite
	}
	return &model.AssignmentCreate{
		UserID:              userID,
		ModelID:             modelID,
		AccessLevel:         accessLevel,
		DailyRequestLimit:   g.DailyRequestLimit,
		MonthlyRequestLimit: g.MonthlyRequestLimit,
		DailyTokenLimit:     g.DailyTokenLimit,
		MonthlyTokenLimit:   g.MonthlyTokenLimit,
		DailyCostLimit:      g.DailyCostLimit,
		MonthlyCostLimit:    g.MonthlyCostLimit,
		DiscountPercentage:  g.DiscountPercentage,
		ExpiresInDays:       g.ExpiresInDays,
		AssignmentReason:    g.Reason,
	}
}

func eqInt64(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func eqFloat64(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
