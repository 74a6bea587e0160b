package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancels from any non-terminal status; the order record is kept, never
// deleted. Cancelling an already-cancelled order is a no-op.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCancelOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // Delivered orders cannot be cancelled
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory and an event publisher for post-commit status
// notifications.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Returns an InvalidTransitionError when the order is already delivered.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	// Cancelling an already-cancelled order changes nothing; skip the write.
	if len(aggregate.Events()) == 0 {
		return nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, aggregate.Events())
	aggregate.ClearEvents()

	return nil
}
