package delivery

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Tier is a named delivery zone with an associated fee, minimum order
// threshold, and distance estimate from the home base.
//
// Tier is an immutable value object; the zero value is invalid and must be
// created via NewTier.
type Tier struct {
	name          string
	fee           kernel.Money
	minOrder      kernel.Money
	distanceMiles int
}

// NewTier creates a delivery tier.
// The name must be non-empty and the distance estimate non-negative;
// fee and minimum order are already guaranteed non-negative by kernel.Money.
func NewTier(name string, fee, minOrder kernel.Money, distanceMiles int) (Tier, error) {
	if name == "" {
		return Tier{}, errs.NewValueIsRequiredError("tier name")
	}
	if distanceMiles < 0 {
		return Tier{}, errs.NewValueIsInvalidErrorWithCause("distanceMiles",
			fmt.Errorf("%d is negative", distanceMiles))
	}

	return Tier{
		name:          name,
		fee:           fee,
		minOrder:      minOrder,
		distanceMiles: distanceMiles,
	}, nil
}

// Name returns the tier label, e.g. "Zone A".
func (t Tier) Name() string {
	return t.name
}

// Fee returns the delivery fee charged for this tier.
func (t Tier) Fee() kernel.Money {
	return t.fee
}

// MinOrder returns the minimum cart subtotal required for delivery in this tier.
func (t Tier) MinOrder() kernel.Money {
	return t.minOrder
}

// DistanceMiles returns the estimated distance from the home base in miles.
func (t Tier) DistanceMiles() int {
	return t.distanceMiles
}
