package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// EventPublisher defines the contract for publishing order status-changed
// events after the owning transaction commits. Publication is best-effort:
// a failed publish never rolls back the state change it describes.
type EventPublisher interface {
	// Publish emits the given events in order.
	Publish(ctx context.Context, events []order.StatusChangedEvent)
}
