// service/discount_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jerrors "github.com/jupiterai/jupiterctl/errors"
	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/util"
)

type fakeDiscountsAPI struct {
	available []model.AvailableDiscount
	enrolled  []model.EnrolledDiscount

	enrollCalls []int64
	enrollErr   error

	notifications []model.Notification
	unread        int
	markedRead    []int64
	markedAll     bool
}

func (f *fakeDiscountsAPI) AvailableDiscounts(_ context.Context) ([]model.AvailableDiscount, error) {
	return f.available, nil
}

func (f *fakeDiscountsAPI) MyDiscounts(_ context.Context) ([]model.EnrolledDiscount, error) {
	return f.enrolled, nil
}

func (f *fakeDiscountsAPI) EnrollDiscount(_ context.Context, discountID int64) error {
	if f.enrollErr != nil {
		return f.enrollErr
	}
	f.enrollCalls = append(f.enrollCalls, discountID)
	return nil
}

func (f *fakeDiscountsAPI) Notifications(_ context.Context, unreadOnly bool) ([]model.Notification, error) {
	if !unreadOnly {
		return f.notifications, nil
	}
	var out []model.Notification
	for _, n := range f.notifications {
		if !n.IsRead {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeDiscountsAPI) UnreadNotificationCount(_ context.Context) (int, error) {
	return f.unread, nil
}

func (f *fakeDiscountsAPI) MarkNotificationRead(_ context.Context, id int64) error {
	f.markedRead = append(f.markedRead, id)
	return nil
}

func (f *fakeDiscountsAPI) MarkAllNotificationsRead(_ context.Context) error {
	f.markedAll = true
	return nil
}

func TestEnrollSucceedsWhenEligible(t *testing.T) {
	api := &fakeDiscountsAPI{available: []model.AvailableDiscount{
		{ID: 5, Name: "Volume Tier 1", DiscountPercentage: 10, MinRequests: 1000, UsageProgress: 1500, CanEnroll: true},
	}}
	svc := NewDiscountService(api, util.NewEventBus())

	discount, err := svc.Enroll(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Volume Tier 1", discount.Name)
	assert.Equal(t, []int64{5}, api.enrollCalls)
}

func TestEnrollUnknownDiscount(t *testing.T) {
	svc := NewDiscountService(&fakeDiscountsAPI{}, util.NewEventBus())

	_, err := svc.Enroll(context.Background(), 99)
	require.ErrorIs(t, err, jerrors.ErrDiscountNotFound)
}

func TestEnrollAlreadyEnrolled(t *testing.T) {
	api := &fakeDiscountsAPI{
		available: []model.AvailableDiscount{
			{ID: 5, Name: "Volume Tier 1", MinRequests: 1000, UsageProgress: 1500, CanEnroll: false},
		},
		enrolled: []model.EnrolledDiscount{
			{ID: 1, DiscountRuleID: 5, IsActive: true},
		},
	}
	svc := NewDiscountService(api, util.NewEventBus())

	_, err := svc.Enroll(context.Background(), 5)
	require.ErrorIs(t, err, jerrors.ErrAlreadyEnrolled)
	assert.Empty(t, api.enrollCalls, "ineligible enrollment must never reach the backend")
}

func TestEnrollNotEligibleReportsRemaining(t *testing.T) {
	api := &fakeDiscountsAPI{available: []model.AvailableDiscount{
		{ID: 5, Name: "Volume Tier 1", MinRequests: 1000, UsageProgress: 400, CanEnroll: false},
	}}
	svc := NewDiscountService(api, util.NewEventBus())

	_, err := svc.Enroll(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "600 more requests")
	assert.Empty(t, api.enrollCalls)
}

func TestAvailableCarriesTierProgress(t *testing.T) {
	api := &fakeDiscountsAPI{available: []model.AvailableDiscount{
		{ID: 5, MinRequests: 1000, UsageProgress: 250},
	}}
	svc := NewDiscountService(api, util.NewEventBus())

	offers, err := svc.Available(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.InDelta(t, 25.0, offers[0].Progress.Percent, 0.001)
	assert.Equal(t, int64(750), offers[0].Progress.Remaining)
}

func TestNotificationsUnreadOnly(t *testing.T) {
	api := &fakeDiscountsAPI{notifications: []model.Notification{
		{ID: 1, IsRead: true},
		{ID: 2, IsRead: false},
	}}
	svc := NewDiscountService(api, util.NewEventBus())

	unread, err := svc.Notifications(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, int64(2), unread[0].ID)

	require.NoError(t, svc.MarkRead(context.Background(), 2))
	assert.Equal(t, []int64{2}, api.markedRead)

	require.NoError(t, svc.MarkAllRead(context.Background()))
	assert.True(t, api.markedAll)
}
