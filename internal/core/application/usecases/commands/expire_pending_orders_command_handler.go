package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ExpirePendingOrdersCommandHandler sweeps pending orders whose payment window
// has lapsed and cancels them through the regular lifecycle rules. The sweep
// runs in a single transaction; events for all expired orders are published
// after commit.
//
// Example:
//
//	handler := NewExpirePendingOrdersCommandHandler(uowFactory, publisher)
//	cmd, _ := NewExpirePendingOrdersCommand(30 * time.Minute)
//	expired, err := handler.Handle(ctx, cmd)
//	if err == nil {
//	    log.Printf("expired %d stale orders", expired)
//	}
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewExpirePendingOrdersCommandHandler creates a handler for the expiry sweep.
// Requires an OrderUoWFactory and an event publisher for post-commit status
// notifications.
func NewExpirePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the expiry sweep and returns the number of orders expired.
func (h *ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.PaymentWindow())
	stale, err := uow.OrderRepository().GetAllPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	var events []order.StatusChangedEvent
	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}

		events = append(events, aggregate.Events()...)
		aggregate.ClearEvents()
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.publisher.Publish(ctx, events)

	return len(stale), nil
}
