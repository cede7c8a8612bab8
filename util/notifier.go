// util/notifier.go

package util

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	logger "github.com/jupiterai/jupiterctl/logging"
	"github.com/jupiterai/jupiterctl/model"
	"github.com/jupiterai/jupiterctl/reconcile"
)

// Notifier renders transient notifications for the user. Command output goes
// to stdout; notifications go to a separate writer (stderr) so tables stay
// machine-readable.
type Notifier struct {
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Register wires the notifier to the events the services publish.
func (n *Notifier) Register(bus *EventBus) {
	bus.Subscribe(EventAssignmentApplied, n.handleAssignmentApplied)
	bus.Subscribe(EventBulkAssigned, n.handleAssignmentApplied)
	bus.Subscribe(EventDiscountEnrolled, n.handleDiscountEnrolled)
	bus.Subscribe(EventCheckoutOpened, n.handleCheckoutOpened)
	bus.Subscribe(EventUserUpdated, n.handleUserUpdated)
}

// NotifyError shows a backend error message verbatim, matching how the
// dashboard surfaced API error details.
func (n *Notifier) NotifyError(err error) {
	fmt.Fprintf(n.out, "error: %v\n", err)
}

func (n *Notifier) handleAssignmentApplied(_ context.Context, event Event) error {
	summary, ok := event.Payload.(reconcile.Summary)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	if summary.Failed > 0 {
		fmt.Fprintf(n.out, "applied with failures: %d created, %d updated, %d deactivated, %d FAILED\n",
			summary.Created, summary.Updated, summary.Deactivated, summary.Failed)
	} else {
		fmt.Fprintf(n.out, "applied: %d created, %d updated, %d deactivated\n",
			summary.Created, summary.Updated, summary.Deactivated)
	}
	logger.Info("assignment summary notified",
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("deactivated", summary.Deactivated),
		zap.Int("failed", summary.Failed))
	return nil
}

func (n *Notifier) handleDiscountEnrolled(_ context.Context, event Event) error {
	discount, ok := event.Payload.(model.AvailableDiscount)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	fmt.Fprintf(n.out, "enrolled in %q (%.0f%% off)\n", discount.Name, discount.DiscountPercentage)
	return nil
}

func (n *Notifier) handleCheckoutOpened(_ context.Context, event Event) error {
	bill, ok := event.Payload.(model.Bill)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	fmt.Fprintf(n.out, "checkout opened for %d/%d ($%.2f)\n", bill.Month, bill.Year, bill.TotalCost)
	return nil
}

func (n *Notifier) handleUserUpdated(_ context.Context, event Event) error {
	user, ok := event.Payload.(model.User)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	fmt.Fprintf(n.out, "user %s updated\n", user.Email)
	return nil
}
