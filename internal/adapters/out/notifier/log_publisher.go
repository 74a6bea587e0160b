// Package notifier publishes order status-change events. The current
// implementation writes structured log records; the dispatch console and any
// future transports consume transitions from there.
package notifier

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
)

// LogPublisher implements ports.EventPublisher by emitting one structured log
// record per status transition. Publication is best-effort: it runs after the
// transition is committed and can never fail the business operation.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that writes to the given logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{
		logger: logger.With("component", "order_notifier"),
	}
}

// Publish emits one record per event in the order they occurred.
func (p *LogPublisher) Publish(ctx context.Context, events []order.StatusChangedEvent) {
	for _, event := range events {
		p.logger.InfoContext(ctx, "Order status changed",
			"order_id", event.OrderID.String(),
			"from", event.From.String(),
			"to", event.To.String(),
			"occurred_at", event.OccurredAt,
		)
	}
}
