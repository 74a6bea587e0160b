package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a staff request to move an order one step
// forward in the fulfillment sequence, naming the expected target status.
// The target guards against stale console views: if the order has already
// moved, the requested target no longer matches and the command fails instead
// of silently advancing to somewhere else.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, order.Dispatched)
//	if err != nil {
//	    return fmt.Errorf("invalid advance request: %w", err)
//	}
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order to the target
// status. The target must be a valid status and cannot be "cancelled";
// cancellation is a separate operation with its own rules.
func NewAdvanceOrderCommand(orderID kernel.UUID, target order.Status) (AdvanceOrderCommand, error) {
	advanceCommand := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setOrderID(orderID),
		advanceCommand.setTarget(target),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the status the order is expected to land on.
func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == order.Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("target",
			errors.New("cancellation is a separate operation"))
	}

	c.target = target
	return nil
}
