// Package delivery provides the static delivery-zone configuration and the
// quote value object used by the quoting engine.
//
// The package includes:
//   - Tier: A named delivery zone with a fee, minimum order, and distance estimate
//   - Table: A versioned, ordered collection of zone definitions keyed by ZIP patterns
//   - Quote: The computed delivery eligibility and fee result for a ZIP and subtotal
//
// The zone table is configuration data, not runtime state: it is loaded once at
// startup and never mutated, so lookups are safe for concurrent use.
//
// ZIP resolution policy: a pattern is either a full five-digit ZIP or a shorter
// ZIP prefix. The most specific (longest) matching pattern wins; when two
// patterns of equal length match, the zone declared first in the table wins.
package delivery
