// service/assignment_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jerrors "github.com/jupiterai/jupiterctl/errors"
	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/reconcile"
	"github.com/jupiterai/jupiterctl/util"
)

// fakeAssignmentsAPI records writes instead of talking to a backend.
type fakeAssignmentsAPI struct {
	assignments []model.Assignment
	created     []model.AssignmentCreate
	updated     map[int64]model.AssignmentUpdate
	deactivated []int64

	// failCreate maps "user/model" pairs whose create should fail.
	failCreate map[string]error

	nextID int64
}

func newFakeAssignmentsAPI(existing ...model.Assignment) *fakeAssignmentsAPI {
	return &fakeAssignmentsAPI{
		assignments: existing,
		updated:     make(map[int64]model.AssignmentUpdate),
		failCreate:  make(map[string]error),
		nextID:      1000,
	}
}

func pairKey(userID, modelID int64) string {
	return fmt.Sprintf("%d/%d", userID, modelID)
}

func (f *fakeAssignmentsAPI) ListAssignments(_ context.Context, filter model.AssignmentFilter) ([]model.Assignment, error) {
	if filter.UserID == nil {
		return f.assignments, nil
	}
	var out []model.Assignment
	for _, a := range f.assignments {
		if a.UserID == *filter.UserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentsAPI) GetAssignment(_ context.Context, id int64) (*model.Assignment, error) {
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			return &f.assignments[i], nil
		}
	}
	return nil, fmt.Errorf("assignment %d missing", id)
}

func (f *fakeAssignmentsAPI) CreateAssignment(_ context.Context, in model.AssignmentCreate) (*model.Assignment, error) {
	if err, ok := f.failCreate[pairKey(in.UserID, in.ModelID)]; ok {
		return nil, err
	}
	f.created = append(f.created, in)
	f.nextID++
	return &model.Assignment{ID: f.nextID, UserID: in.UserID, ModelID: in.ModelID, IsActive: true}, nil
}

func (f *fakeAssignmentsAPI) UpdateAssignment(_ context.Context, id int64, in model.AssignmentUpdate) (*model.Assignment, error) {
	f.updated[id] = in
	return &model.Assignment{ID: id}, nil
}

func (f *fakeAssignmentsAPI) DeactivateAssignment(_ context.Context, id int64) error {
	f.deactivated = append(f.deactivated, id)
	return nil
}

func (f *fakeAssignmentsAPI) BulkCreateAssignments(_ context.Context, in model.BulkAssignmentCreate) (*model.BulkAssignmentResult, error) {
	return &model.BulkAssignmentResult{}, nil
}

func (f *fakeAssignmentsAPI) AssignmentStats(_ context.Context) (*model.AssignmentStats, error) {
	return &model.AssignmentStats{TotalAssignments: int64(len(f.assignments))}, nil
}

func (f *fakeAssignmentsAPI) UserAssignments(ctx context.Context, userID int64) ([]model.Assignment, error) {
	return f.ListAssignments(ctx, model.AssignmentFilter{UserID: &userID})
}

func newAssignmentService(api *fakeAssignmentsAPI) *AssignmentService {
	return NewAssignmentService(api, util.NewValidationUtil(), util.NewEventBus())
}

func TestApplyGrantsIssuesPlannedWrites(t *testing.T) {
	api := newFakeAssignmentsAPI(
		model.Assignment{ID: 10, UserID: 7, ModelID: 1, IsActive: true, AccessLevel: model.AccessReadWrite},
	)
	svc := newAssignmentService(api)

	desired := map[int64]reconcile.DesiredGrant{
		1: {Included: false},
		2: {Included: true, AccessLevel: model.AccessReadOnly},
	}

	summary, err := svc.ApplyGrants(context.Background(), 7, desired)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Deactivated)
	assert.Zero(t, summary.Failed)

	require.Len(t, api.created, 1)
	assert.Equal(t, int64(2), api.created[0].ModelID)

	upd, ok := api.updated[10]
	require.True(t, ok, "assignment 10 should be deactivated via update")
	require.NotNil(t, upd.IsActive)
	assert.False(t, *upd.IsActive)
}

func TestApplyGrantsContinuesPastFailures(t *testing.T) {
	api := newFakeAssignmentsAPI()
	api.failCreate[pairKey(7, 2)] = fmt.Errorf("duplicate active assignment")
	svc := newAssignmentService(api)

	desired := map[int64]reconcile.DesiredGrant{
		1: {Included: true},
		2: {Included: true},
		3: {Included: true},
	}

	summary, err := svc.ApplyGrants(context.Background(), 7, desired)
	require.ErrorIs(t, err, jerrors.ErrPartialApply)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.Failed)

	// Models 1 and 3 must land despite the failure on model 2.
	require.Len(t, api.created, 2)
	assert.Equal(t, int64(1), api.created[0].ModelID)
	assert.Equal(t, int64(3), api.created[1].ModelID)
}

func TestApplyGrantsNoOpWhenConverged(t *testing.T) {
	existing := model.Assignment{ID: 10, UserID: 7, ModelID: 1, IsActive: true, AccessLevel: model.AccessReadWrite}
	api := newFakeAssignmentsAPI(existing)
	svc := newAssignmentService(api)

	_, desired, err := svc.UserGrants(context.Background(), 7)
	require.NoError(t, err)

	summary, err := svc.ApplyGrants(context.Background(), 7, desired)
	require.NoError(t, err)
	assert.Empty(t, summary.Results)
	assert.Empty(t, api.created)
	assert.Empty(t, api.updated)
}

func TestApplyGrantsRejectsInvalidGrantBeforeFetch(t *testing.T) {
	api := newFakeAssignmentsAPI()
	svc := newAssignmentService(api)

	daily, monthly := int64(200), int64(30)
	desired := map[int64]reconcile.DesiredGrant{
		1: {Included: true, DailyRequestLimit: &daily, MonthlyRequestLimit: &monthly},
	}

	_, err := svc.ApplyGrants(context.Background(), 7, desired)
	require.ErrorIs(t, err, jerrors.ErrInvalidGrant)
	assert.Empty(t, api.created)
	assert.Empty(t, api.updated)
}

func TestBulkAssignCrossProduct(t *testing.T) {
	api := newFakeAssignmentsAPI()
	svc := newAssignmentService(api)

	summary, err := svc.BulkAssign(context.Background(), []int64{1, 2}, []int64{10, 20},
		model.AssignmentCreate{AccessLevel: model.AccessReadOnly})
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Created)
	require.Len(t, api.created, 4)
	for _, c := range api.created {
		assert.Equal(t, model.AccessReadOnly, c.AccessLevel)
	}
}

func TestBulkAssignRejectsEmptySelection(t *testing.T) {
	svc := newAssignmentService(newFakeAssignmentsAPI())

	_, err := svc.BulkAssign(context.Background(), nil, []int64{1}, model.AssignmentCreate{})
	require.ErrorIs(t, err, jerrors.ErrEmptySelection)
}

func TestRevokeDeactivatesActiveGrant(t *testing.T) {
	api := newFakeAssignmentsAPI(
		model.Assignment{ID: 10, UserID: 7, ModelID: 1, IsActive: true},
		model.Assignment{ID: 11, UserID: 7, ModelID: 2, IsActive: false},
	)
	svc := newAssignmentService(api)

	require.NoError(t, svc.Revoke(context.Background(), 7, 1))
	assert.Equal(t, []int64{10}, api.deactivated)

	// An inactive grant has nothing to revoke.
	err := svc.Revoke(context.Background(), 7, 2)
	require.ErrorIs(t, err, jerrors.ErrAssignmentNotFound)
}

func TestPlanGrantsIsDryRun(t *testing.T) {
	api := newFakeAssignmentsAPI()
	svc := newAssignmentService(api)

	ops, err := svc.PlanGrants(context.Background(), 7, map[int64]reconcile.DesiredGrant{
		1: {Included: true},
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, reconcile.OpCreate, ops[0].Type)
	assert.Empty(t, api.created, "planning must not write")
}
