// service/discount_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/client"
	jerrors "github.com/jupiterai/jupiterctl/errors"
	logger "github.com/jupiterai/jupiterctl/logging"
	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/pricing"
	"github.com/jupiterai/jupiterctl/util"
)

// DiscountOffer pairs an available discount with the user's progress toward
// its usage tier.
type DiscountOffer struct {
	model.AvailableDiscount
	Progress pricing.Progress
}

// IDiscountService defines the interface for discount and notification operations
type IDiscountService interface {
	Available(ctx context.Context) ([]DiscountOffer, error)
	Mine(ctx context.Context) ([]model.EnrolledDiscount, error)
	Enroll(ctx context.Context, discountID int64) (*model.AvailableDiscount, error)
	Notifications(ctx context.Context, unreadOnly bool) ([]model.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, notificationID int64) error
	MarkAllRead(ctx context.Context) error
}

// DiscountService handles discount enrollment and the discount notifications
type DiscountService struct {
	api      client.Discounts
	eventBus *util.EventBus
}

var _ IDiscountService = &DiscountService{}

// NewDiscountService creates a new instance of DiscountService
func NewDiscountService(api client.Discounts, eventBus *util.EventBus) *DiscountService {
	return &DiscountService{api: api, eventBus: eventBus}
}

// Available retrieves the discounts the user could enroll in, each with tier progress
func (s *DiscountService) Available(ctx context.Context) ([]DiscountOffer, error) {
	discounts, err := s.api.AvailableDiscounts(ctx)
	if err != nil {
		logger.Error("Error listing available discounts", zap.Error(err))
		return nil, err
	}

	offers := make([]DiscountOffer, 0, len(discounts))
	for _, d := range discounts {
		offers = append(offers, DiscountOffer{
			AvailableDiscount: d,
			Progress:          pricing.TierProgress(d),
		})
	}
	return offers, nil
}

// Mine retrieves the user's existing enrollments
func (s *DiscountService) Mine(ctx context.Context) ([]model.EnrolledDiscount, error) {
	enrolled, err := s.api.MyDiscounts(ctx)
	if err != nil {
		logger.Error("Error listing enrolled discounts", zap.Error(err))
		return nil, err
	}
	return enrolled, nil
}

// Enroll enrolls the user in one discount. Ineligible enrollments are refused
// locally with a specific error before any write reaches the backend.
func (s *DiscountService) Enroll(ctx context.Context, discountID int64) (*model.AvailableDiscount, error) {
	discounts, err := s.api.AvailableDiscounts(ctx)
	if err != nil {
		logger.Error("Error listing available discounts", zap.Error(err))
		return nil, err
	}

	var target *model.AvailableDiscount
	for i := range discounts {
		if discounts[i].ID == discountID {
			target = &discounts[i]
			break
		}
	}
	if target == nil {
		return nil, jerrors.ErrDiscountNotFound
	}

	if !target.CanEnroll {
		if enrolled, err := s.Mine(ctx); err == nil {
			for _, e := range enrolled {
				if e.DiscountRuleID == discountID && e.IsActive {
					return nil, jerrors.ErrAlreadyEnrolled
				}
			}
		}
		progress := pricing.TierProgress(*target)
		return nil, fmt.Errorf("not eligible for %q: %d more requests needed", target.Name, progress.Remaining)
	}

	if err := s.api.EnrollDiscount(ctx, discountID); err != nil {
		if client.IsConflict(err) {
			return nil, jerrors.ErrAlreadyEnrolled
		}
		logger.Error("Error enrolling in discount", zap.Error(err), zap.Int64("discountID", discountID))
		return nil, err
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, util.EventDiscountEnrolled, *target)

	logger.Info("Enrolled in discount",
		zap.Int64("discountID", discountID),
		zap.String("name", target.Name),
		zap.Float64("percentage", target.DiscountPercentage))
	return target, nil
}

// Notifications retrieves the user's discount notifications
func (s *DiscountService) Notifications(ctx context.Context, unreadOnly bool) ([]model.Notification, error) {
	notifications, err := s.api.Notifications(ctx, unreadOnly)
	if err != nil {
		logger.Error("Error listing notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

// UnreadCount retrieves the number of unread notifications
func (s *DiscountService) UnreadCount(ctx context.Context) (int, error) {
	count, err := s.api.UnreadNotificationCount(ctx)
	if err != nil {
		logger.Error("Error retrieving unread notification count", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// MarkRead marks one notification as read
func (s *DiscountService) MarkRead(ctx context.Context, notificationID int64) error {
	if err := s.api.MarkNotificationRead(ctx, notificationID); err != nil {
		logger.Error("Error marking notification read", zap.Error(err), zap.Int64("notificationID", notificationID))
		return err
	}
	return nil
}

// MarkAllRead marks every notification as read
func (s *DiscountService) MarkAllRead(ctx context.Context) error {
	if err := s.api.MarkAllNotificationsRead(ctx); err != nil {
		logger.Error("Error marking all notifications read", zap.Error(err))
		return err
	}
	return nil
}
