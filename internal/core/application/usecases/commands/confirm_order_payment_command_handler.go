package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ConfirmOrderPaymentCommandHandler handles payment capture for pending orders.
// Charges the order total through the payment provider and, on success, moves
// the order to "confirmed" with the provider's charge reference recorded.
//
// A declined charge leaves the order pending so the customer can retry with a
// different payment method.
//
// Example:
//
//	handler := NewConfirmOrderPaymentCommandHandler(uowFactory, provider, publisher)
//	cmd, _ := NewConfirmOrderPaymentCommand(orderID, token)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrPaymentDeclined):
//	    // 402: order stays pending
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404: unknown order
//	case err != nil:
//	    // other failure
//	}
type ConfirmOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	provider   ports.PaymentProvider
	publisher  ports.EventPublisher
}

// NewConfirmOrderPaymentCommandHandler creates a handler for payment capture.
// Requires an OrderUoWFactory, the payment provider gateway, and an event
// publisher for post-commit status notifications.
func NewConfirmOrderPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	provider ports.PaymentProvider,
	publisher ports.EventPublisher,
) ConfirmOrderPaymentCommandHandler {
	return ConfirmOrderPaymentCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		publisher:  publisher,
	}
}

// Handle processes the payment capture command.
// The order must be pending: confirming twice or paying a cancelled order is
// an InvalidTransitionError, checked before any charge is attempted so a
// non-pending order is never billed. The charge is captured outside the
// transition transaction; if persisting the confirmed state then fails, the
// charge reference is surfaced in the error for reconciliation.
func (h *ConfirmOrderPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderPaymentCommand) error {
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

	if aggregate.Status() != order.Pending {
		return errs.NewInvalidTransitionError(aggregate.Status().String(), order.Confirmed.String())
	}

	reference, err := h.provider.Charge(ctx, aggregate.Total(), cmd.PaymentToken())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmPayment(reference); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return errs.NewPersistenceError("confirm payment "+reference, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("confirm payment "+reference, err)
	}

	h.publisher.Publish(ctx, aggregate.Events())
	aggregate.ClearEvents()

	return nil
}
