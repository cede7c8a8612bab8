// util/event_bus_test.go
package util

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupiterai/jupiterctl/reconcile"
)

func TestDrainWaitsForHandlers(t *testing.T) {
	bus := NewEventBus()

	var out bytes.Buffer
	notifier := NewNotifier(&out)
	notifier.Register(bus)

	bus.Publish(context.Background(), EventAssignmentApplied, reconcile.Summary{
		Created: 2, Updated: 1,
	})
	bus.Drain()

	// Handlers run on goroutines; after Drain their output must be complete.
	assert.Contains(t, out.String(), "applied: 2 created, 1 updated, 0 deactivated")
}

func TestDrainCoversEveryPublishedEvent(t *testing.T) {
	bus := NewEventBus()

	var handled int64
	bus.Subscribe("test.event", func(_ context.Context, _ Event) error {
		atomic.AddInt64(&handled, 1)
		return nil
	})

	for i := 0; i < 10; i++ {
		bus.Publish(context.Background(), "test.event", i)
	}
	bus.Drain()

	require.Equal(t, int64(10), atomic.LoadInt64(&handled))
}

func TestDrainWithoutSubscribersReturnsImmediately(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(context.Background(), "nobody.listens", nil)
	bus.Drain()
}
