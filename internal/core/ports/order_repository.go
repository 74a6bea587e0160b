package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository at the aggregate's previous
	// version; a version mismatch means a concurrent transition won and the
	// update is rejected.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line snapshot, address, and quote.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingCreatedBefore retrieves pending orders created before the
	// given cutoff. Used by the payment-window expiry job to find stale
	// unpaid orders.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
