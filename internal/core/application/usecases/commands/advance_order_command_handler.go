package commands

import (
	"context"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// AdvanceOrderCommandHandler handles staff-driven fulfillment progression.
// Moves the order exactly one step forward and verifies the result matches the
// requested target, so skipping steps is impossible regardless of what the
// console submits.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewAdvanceOrderCommand(orderID, order.Delivered)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // The order was not one step away from the requested status
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAdvanceOrderCommandHandler creates a handler for fulfillment progression.
// Requires an OrderUoWFactory and an event publisher for post-commit status
// notifications.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the advance command.
// Returns an InvalidTransitionError when the order is terminal or when the
// single-step advance does not land on the requested target.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	current := aggregate.Status()
	if err = aggregate.Advance(); err != nil {
		return err
	}

	if aggregate.Status() != cmd.Target() {
		return errs.NewInvalidTransitionError(current.String(), cmd.Target().String())
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
