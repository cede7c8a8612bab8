// service/billing_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/client"
	jerrors "github.com/jupiterai/jupiterctl/errors"
	logger "github.com/jupiterai/jupiterctl/logging"
	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/util"
)

// IBillingService defines the interface for billing operations
type IBillingService interface {
	Bills(ctx context.Context) ([]model.Bill, error)
	UnpaidBills(ctx context.Context) ([]model.Bill, error)
	Pay(ctx context.Context, billID int64) (*model.CheckoutSession, error)
}

// BillingService handles monthly bills and payment checkout. Payment itself
// happens on Stripe's hosted page; this side only obtains the URL.
type BillingService struct {
	api      client.Billing
	eventBus *util.EventBus
}

var _ IBillingService = &BillingService{}

// NewBillingService creates a new instance of BillingService
func NewBillingService(api client.Billing, eventBus *util.EventBus) *BillingService {
	return &BillingService{api: api, eventBus: eventBus}
}

// Bills retrieves the user's monthly billing history
func (s *BillingService) Bills(ctx context.Context) ([]model.Bill, error) {
	bills, err := s.api.ListBills(ctx)
	if err != nil {
		logger.Error("Error listing bills", zap.Error(err))
		return nil, err
	}
	return bills, nil
}

// UnpaidBills retrieves only the bills still awaiting payment
func (s *BillingService) UnpaidBills(ctx context.Context) ([]model.Bill, error) {
	bills, err := s.Bills(ctx)
	if err != nil {
		return nil, err
	}

	unpaid := bills[:0]
	for _, b := range bills {
		if !b.Paid() {
			unpaid = append(unpaid, b)
		}
	}
	return unpaid, nil
}

// Pay opens a Stripe checkout session for one unpaid bill. Already-paid bills
// are rejected before any backend call.
func (s *BillingService) Pay(ctx context.Context, billID int64) (*model.CheckoutSession, error) {
	bills, err := s.Bills(ctx)
	if err != nil {
		return nil, err
	}

	var bill *model.Bill
	for i := range bills {
		if bills[i].ID == billID {
			bill = &bills[i]
			break
		}
	}
	if bill == nil {
		return nil, jerrors.ErrBillNotFound
	}
	if bill.Paid() {
		return nil, jerrors.ErrBillAlreadyPaid
	}

	session, err := s.api.CreateCheckoutSession(ctx, billID)
	if err != nil {
		logger.Error("Error creating checkout session", zap.Error(err), zap.Int64("billID", billID))
		return nil, err
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, util.EventCheckoutOpened, *bill)

	logger.Info("Checkout session created",
		zap.Int64("billID", billID),
		zap.Int("year", bill.Year),
		zap.Int("month", bill.Month))
	return session, nil
}
