// service/user_service_test.go
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

type fakeUsersAPI struct {
	users   []model.User
	updated map[int64]model.UserUpdate
}

func (f *fakeUsersAPI) ListUsers(_ context.Context, skip, limit int) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeUsersAPI) UpdateUser(_ context.Context, id int64, in model.UserUpdate) (*model.User, error) {
	if f.updated == nil {
		f.updated = make(map[int64]model.UserUpdate)
	}
	f.updated[id] = in
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, jerrors.ErrUserNotFound
}

func TestGetUserDerivedFromList(t *testing.T) {
	api := &fakeUsersAPI{users: []model.User{
		{ID: 1, Email: "a@jupiter.ai"},
		{ID: 7, Email: "b@jupiter.ai"},
	}}
	svc := NewUserService(api, util.NewValidationUtil(), util.NewEventBus())

	user, err := svc.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "b@jupiter.ai", user.Email)

	_, err = svc.GetUser(context.Background(), 99)
	require.ErrorIs(t, err, jerrors.ErrUserNotFound)
}

func TestUpdateUserRejectsNegativeLimits(t *testing.T) {
	api := &fakeUsersAPI{users: []model.User{{ID: 1, Email: "a@jupiter.ai"}}}
	svc := NewUserService(api, util.NewValidationUtil(), util.NewEventBus())

	bad := int64(-5)
	_, err := svc.UpdateUser(context.Background(), 1, model.UserUpdate{MonthlyRequestLimit: &bad})
	require.ErrorIs(t, err, jerrors.ErrInvalidUserData)
	assert.Empty(t, api.updated)
}
