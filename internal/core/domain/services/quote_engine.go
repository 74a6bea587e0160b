package services

import (
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
)

// QuoteEngine is a domain service that computes delivery eligibility and fees
// for a destination ZIP code and cart subtotal against a configured zone table.
//
// Business rules:
//   - A malformed ZIP (anything but five digits) is rejected, never an error
//   - A well-formed ZIP with no matching zone pattern is outside the service area
//   - A matched zone whose minimum order exceeds the subtotal yields a
//     below-minimum rejection that still reports the fee and the minimum
//   - Quoting is pure: the same table, ZIP, and subtotal always produce the
//     same quote, so the result is safe to recompute at checkout
//
// Example usage:
//
//	engine := NewQuoteEngine(table)
//	quote := engine.Quote("78751", subtotal)
//	if !quote.Allowed() {
//	    // Show quote.Reason() to the customer
//	    return
//	}
//	total := subtotal.Add(quote.Fee())
type QuoteEngine struct {
	table delivery.Table
}

// NewQuoteEngine creates a quoting engine bound to a zone table.
func NewQuoteEngine(table delivery.Table) QuoteEngine {
	return QuoteEngine{table: table}
}

// Quote computes the delivery quote for the given ZIP code and cart subtotal.
// It never returns an error: every rejection is a domain outcome carried in the
// quote itself.
func (e QuoteEngine) Quote(zip string, subtotal kernel.Money) delivery.Quote {
	if !delivery.IsWellFormedZip(zip) {
		return delivery.NewRejectedQuote(zip, delivery.ReasonInvalidZip)
	}

	tier, ok := e.table.Resolve(zip)
	if !ok {
		return delivery.NewRejectedQuote(zip, delivery.ReasonOutsideServiceArea)
	}

	if subtotal.LessThan(tier.MinOrder()) {
		return delivery.NewBelowMinimumQuote(zip, tier)
	}

	return delivery.NewAllowedQuote(zip, tier)
}

// TableVersion returns the configuration revision of the bound zone table.
func (e QuoteEngine) TableVersion() string {
	return e.table.Version()
}
