package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// StatusChangedEvent records a single order status transition.
// Events are collected on the aggregate during transitions and published by
// the application layer after the change is committed, so subscribers such as
// the dispatch console only ever observe durable state.
type StatusChangedEvent struct {
	OrderID    kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}
