package delivery

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Rejection reasons shown to the customer inline when a quote is disallowed.
const (
	ReasonInvalidZip         = "invalid ZIP code"
	ReasonOutsideServiceArea = "outside service area"
	ReasonMinimumNotMet      = "minimum order not met"
)

// Quote is the computed delivery eligibility and fee result for a destination
// ZIP and cart subtotal.
//
// Invariant: Allowed() is true iff the ZIP resolved to a service zone AND the
// subtotal met that zone's minimum order. When a tier matched but the minimum
// was not met, the fee and minimum are still reported so the customer can see
// what is required.
//
// Quote is an immutable value object produced by the quoting engine.
type Quote struct {
	zip           string
	tierName      string
	fee           kernel.Money
	minOrder      kernel.Money
	distanceMiles int
	allowed       bool
	reason        string
}

// NewAllowedQuote creates an eligible quote for a ZIP resolved to a tier.
func NewAllowedQuote(zip string, tier Tier) Quote {
	return Quote{
		zip:           zip,
		tierName:      tier.Name(),
		fee:           tier.Fee(),
		minOrder:      tier.MinOrder(),
		distanceMiles: tier.DistanceMiles(),
		allowed:       true,
	}
}

// NewBelowMinimumQuote creates a disallowed quote for a ZIP that resolved to a
// tier whose minimum order was not met. Fee and minimum are carried over from
// the tier so the rejection is actionable.
func NewBelowMinimumQuote(zip string, tier Tier) Quote {
	return Quote{
		zip:           zip,
		tierName:      tier.Name(),
		fee:           tier.Fee(),
		minOrder:      tier.MinOrder(),
		distanceMiles: tier.DistanceMiles(),
		allowed:       false,
		reason:        ReasonMinimumNotMet,
	}
}

// NewRejectedQuote creates a disallowed quote with no resolved tier, for ZIPs
// outside the service area or malformed ZIPs. Fee and minimum are zero.
func NewRejectedQuote(zip string, reason string) Quote {
	return Quote{
		zip:     zip,
		allowed: false,
		reason:  reason,
	}
}

// RestoreQuote reconstructs a quote from persistence.
// A disallowed quote must carry a rejection reason.
func RestoreQuote(
	zip, tierName string,
	fee, minOrder kernel.Money,
	distanceMiles int,
	allowed bool,
	reason string,
) (Quote, error) {
	if !allowed && reason == "" {
		return Quote{}, errs.NewValueIsRequiredError("rejection reason")
	}

	return Quote{
		zip:           zip,
		tierName:      tierName,
		fee:           fee,
		minOrder:      minOrder,
		distanceMiles: distanceMiles,
		allowed:       allowed,
		reason:        reason,
	}, nil
}

// Zip returns the destination ZIP code the quote was computed for.
func (q Quote) Zip() string {
	return q.zip
}

// TierName returns the resolved tier label, empty when no tier matched.
func (q Quote) TierName() string {
	return q.tierName
}

// Fee returns the delivery fee. Reported even for below-minimum rejections.
func (q Quote) Fee() kernel.Money {
	return q.fee
}

// MinOrder returns the minimum order threshold of the resolved tier.
func (q Quote) MinOrder() kernel.Money {
	return q.minOrder
}

// DistanceMiles returns the estimated delivery distance of the resolved tier.
func (q Quote) DistanceMiles() int {
	return q.distanceMiles
}

// Allowed reports whether delivery is available for the quoted ZIP and subtotal.
func (q Quote) Allowed() bool {
	return q.allowed
}

// Reason returns the rejection reason for disallowed quotes, empty otherwise.
func (q Quote) Reason() string {
	return q.reason
}
