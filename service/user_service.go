// service/user_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/client"
	jerrors "github.com/jupiterai/jupiterctl/errors"
	logger "github.com/jupiterai/jupiterctl/logging"
	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/util"
)

// IUserService defines the interface for user operations
type IUserService interface {
	ListUsers(ctx context.Context, skip, limit int) ([]model.User, error)
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	UpdateUser(ctx context.Context, userID int64, update model.UserUpdate) (*model.User, error)
}

// UserService handles business logic for user administration
type UserService struct {
	api            client.Users
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService
func NewUserService(api client.Users, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *UserService {
	return &UserService{
		api:            api,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// ListUsers retrieves all users, possibly with pagination
func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	users, err := s.api.ListUsers(ctx, skip, limit)
	if err != nil {
		logger.Error("Error listing users", zap.Error(err), zap.Int("skip", skip), zap.Int("limit", limit))
		return nil, err
	}
	return users, nil
}

// GetUser retrieves a user by their ID. The admin API has no single-user
// read, so the lookup scans the list endpoint.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	users, err := s.api.ListUsers(ctx, 0, 0)
	if err != nil {
		logger.Error("Error retrieving user", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}
	return nil, jerrors.ErrUserNotFound
}

// UpdateUser handles an admin edit of a user record
func (s *UserService) UpdateUser(ctx context.Context, userID int64, update model.UserUpdate) (*model.User, error) {
	if err := s.validationUtil.ValidateUserUpdate(update); err != nil {
		return nil, fmt.Errorf("%w: %v", jerrors.ErrInvalidUserData, err)
	}

	user, err := s.api.UpdateUser(ctx, userID, update)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, jerrors.ErrUserNotFound
		}
		logger.Error("Error updating user", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, util.EventUserUpdated, *user)

	logger.Info("User updated successfully", zap.Int64("userID", userID), zap.String("email", user.Email))
	return user, nil
}
