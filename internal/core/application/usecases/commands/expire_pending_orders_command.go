package commands

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand triggers cancellation of pending orders whose
// payment window has lapsed. An order left pending longer than the configured
// window was abandoned at checkout and is cancelled to release it from the
// staff console.
//
// Example:
//
//	cmd, _ := NewExpirePendingOrdersCommand(30 * time.Minute)
//	handler := NewExpirePendingOrdersCommandHandler(uowFactory, publisher)
//	expired, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("expiry sweep failed: %v", err)
//	}
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	paymentWindow time.Duration

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand creates a command to expire stale pending
// orders. The payment window must be positive.
func NewExpirePendingOrdersCommand(paymentWindow time.Duration) (ExpirePendingOrdersCommand, error) {
	expireCommand := ExpirePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setPaymentWindow(paymentWindow); err != nil {
		return ExpirePendingOrdersCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpirePendingOrdersCommandIsNotConstructed if validation fails.
func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

// PaymentWindow returns how long an order may stay pending before it expires.
func (c ExpirePendingOrdersCommand) PaymentWindow() time.Duration {
	return c.paymentWindow
}

func (c *ExpirePendingOrdersCommand) setPaymentWindow(paymentWindow time.Duration) error {
	if paymentWindow <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("paymentWindow",
			fmt.Errorf("%s is not greater than 0", paymentWindow))
	}

	c.paymentWindow = paymentWindow
	return nil
}
