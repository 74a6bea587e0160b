package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// PaymentProvider defines the gateway contract for capturing payment on an
// order total. Implementations talk to an external processor; the domain only
// sees the outcome.
type PaymentProvider interface {
	// Charge captures the given amount against an opaque payment token.
	// Returns the processor's charge reference on success. A declined charge
	// is reported as an errs.PaymentDeclinedError; transport failures after
	// submission surface as errs.PersistenceError since the charge outcome
	// is unknown.
	Charge(ctx context.Context, amount kernel.Money, token string) (string, error)
}
