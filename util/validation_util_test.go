package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/reconcile"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }
func days(v int) *int        { return &v }

func TestValidateGrantAcceptsReasonableGrant(t *testing.T) {
	v := NewValidationUtil()
	err := v.ValidateGrant(reconcile.DesiredGrant{
		Included:            true,
		AccessLevel:         model.AccessReadWrite,
		DailyRequestLimit:   i64(100),
		MonthlyRequestLimit: i64(3000),
		ExpiresInDays:       days(30),
	})
	assert.NoError(t, err)
}

func TestValidateGrantSkipsExcluded(t *testing.T) {
	v := NewValidationUtil()
	// Excluded grants only produce deactivations; their stale fields are irrelevant.
	err := v.ValidateGrant(reconcile.DesiredGrant{Included: false, AccessLevel: "bogus"})
	assert.NoError(t, err)
}

func TestValidateGrantRejectsBadAccessLevel(t *testing.T) {
	v := NewValidationUtil()
	err := v.ValidateGrant(reconcile.DesiredGrant{Included: true, AccessLevel: "owner"})
	assert.Error(t, err)
}

func TestValidateGrantDailyTimes30MustNotExceedMonthly(t *testing.T) {
	v := NewValidationUtil()

	err := v.ValidateGrant(reconcile.DesiredGrant{
		Included:            true,
		AccessLevel:         model.AccessReadOnly,
		DailyRequestLimit:   i64(100),
		MonthlyRequestLimit: i64(2999),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds monthly limit")

	// Exactly 30x is allowed.
	err = v.ValidateGrant(reconcile.DesiredGrant{
		Included:            true,
		AccessLevel:         model.AccessReadOnly,
		DailyRequestLimit:   i64(100),
		MonthlyRequestLimit: i64(3000),
	})
	assert.NoError(t, err)
}

func TestValidateGrantCostLimits(t *testing.T) {
	v := NewValidationUtil()
	err := v.ValidateGrant(reconcile.DesiredGrant{
		Included:         true,
		DailyCostLimit:   f64(10),
		MonthlyCostLimit: f64(250),
	})
	require.Error(t, err)
}

func TestValidateGrantsReportsOffendingModel(t *testing.T) {
	v := NewValidationUtil()
	err := v.ValidateGrants(map[int64]reconcile.DesiredGrant{
		1: {Included: true, AccessLevel: model.AccessReadOnly},
		2: {Included: true, DiscountPercentage: 150},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model 2")
}

func TestValidateTemplate(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidateTemplate(model.AssignmentCreate{AccessLevel: model.AccessReadWrite}))
	assert.Error(t, v.ValidateTemplate(model.AssignmentCreate{AccessLevel: "root"}))
	assert.Error(t, v.ValidateTemplate(model.AssignmentCreate{DiscountPercentage: 120}))
	assert.Error(t, v.ValidateTemplate(model.AssignmentCreate{CustomCostPerToken: f64(0.01)}))
	assert.Error(t, v.ValidateTemplate(model.AssignmentCreate{ExpiresInDays: days(0)}))
	assert.Error(t, v.ValidateTemplate(model.AssignmentCreate{
		DailyRequestLimit:   i64(10),
		MonthlyRequestLimit: i64(100),
	}))
}

func TestValidateBulkSelection(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidateBulkSelection([]int64{1, 2}, []int64{10}))
	assert.Error(t, v.ValidateBulkSelection(nil, []int64{10}))
	assert.Error(t, v.ValidateBulkSelection([]int64{1}, nil))
	assert.Error(t, v.ValidateBulkSelection([]int64{0}, []int64{10}))
}

func TestValidateUserUpdate(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidateUserUpdate(model.UserUpdate{MonthlyRequestLimit: i64(1000)}))
	assert.Error(t, v.ValidateUserUpdate(model.UserUpdate{MonthlyCostLimit: f64(-1)}))
}
