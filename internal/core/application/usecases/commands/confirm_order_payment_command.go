package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrConfirmOrderPaymentCommandIsNotConstructed = errors.New(
	"ConfirmOrderPaymentCommand must be created via NewConfirmOrderPaymentCommand constructor",
)

// ConfirmOrderPaymentCommand represents a request to capture payment for a
// pending order. Carries the opaque payment token collected by the checkout
// client; the token is passed through to the payment provider and never
// inspected.
//
// Example:
//
//	cmd, err := NewConfirmOrderPaymentCommand(orderID, "tok_visa_4242")
//	if err != nil {
//	    return fmt.Errorf("invalid payment data: %w", err)
//	}
//
//	handler := NewConfirmOrderPaymentCommandHandler(uowFactory, provider, publisher)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPaymentDeclined) {
//	    // Order remains pending; the customer may retry
//	}
type ConfirmOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	paymentToken string

	guard guard.ConstructorGuard
}

// NewConfirmOrderPaymentCommand creates a command to capture payment.
// Validates that the order ID is valid and the payment token is not empty.
func NewConfirmOrderPaymentCommand(orderID kernel.UUID, paymentToken string) (ConfirmOrderPaymentCommand, error) {
	paymentCommand := ConfirmOrderPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setPaymentToken(paymentToken),
	); err != nil {
		return ConfirmOrderPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmOrderPaymentCommandIsNotConstructed if validation fails.
func (c ConfirmOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to capture payment for.
func (c ConfirmOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentToken returns the opaque payment token.
func (c ConfirmOrderPaymentCommand) PaymentToken() string {
	return c.paymentToken
}

func (c *ConfirmOrderPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderPaymentCommand) setPaymentToken(paymentToken string) error {
	if paymentToken == "" {
		return errs.NewValueIsRequiredError("paymentToken")
	}

	c.paymentToken = paymentToken
	return nil
}
