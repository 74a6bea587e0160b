package delivery

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

const zipLength = 5

// Zone binds a delivery tier to the set of ZIP patterns it serves.
// A pattern is either a full five-digit ZIP code or a shorter numeric prefix
// covering every ZIP that starts with it.
type Zone struct {
	tier     Tier
	patterns []string
}

// NewZone creates a zone definition from a tier and its ZIP patterns.
// Each pattern must be one to five digits.
func NewZone(tier Tier, patterns []string) (Zone, error) {
	if len(patterns) == 0 {
		return Zone{}, errs.NewValueIsRequiredError("zone patterns")
	}
	for _, p := range patterns {
		if len(p) == 0 || len(p) > zipLength || !isDigits(p) {
			return Zone{}, errs.NewValueIsInvalidErrorWithCause("zone pattern",
				fmt.Errorf("%q is not a ZIP code or ZIP prefix", p))
		}
	}

	return Zone{tier: tier, patterns: copyStrings(patterns)}, nil
}

// Tier returns the delivery tier served by this zone.
func (z Zone) Tier() Tier {
	return z.tier
}

// Patterns returns a copy of the zone's ZIP patterns.
func (z Zone) Patterns() []string {
	return copyStrings(z.patterns)
}

// Table is the versioned delivery-zone configuration artifact.
// Zones are kept in declaration order because order is the documented
// tie-breaker for overlapping patterns of equal specificity.
type Table struct {
	version string
	zones   []Zone
}

// NewTable creates a zone table from an ordered list of zone definitions.
// The version identifies the configuration revision for operators; it must be
// non-empty so deployed tables are always traceable.
func NewTable(version string, zones []Zone) (Table, error) {
	if version == "" {
		return Table{}, errs.NewValueIsRequiredError("zone table version")
	}
	if len(zones) == 0 {
		return Table{}, errs.NewValueIsRequiredError("zones")
	}

	return Table{version: version, zones: append([]Zone(nil), zones...)}, nil
}

// Version returns the configuration revision of the table.
func (t Table) Version() string {
	return t.version
}

// Resolve looks up the delivery tier serving the given ZIP code.
//
// Resolution policy: among all zones with a matching pattern, the longest
// pattern wins; ties between patterns of equal length are resolved by
// declaration order, first zone wins. Returns false when no pattern matches
// or when zip is not a well-formed five-digit ZIP.
func (t Table) Resolve(zip string) (Tier, bool) {
	if !IsWellFormedZip(zip) {
		return Tier{}, false
	}

	var (
		best    Tier
		bestLen int
		found   bool
	)

	for _, zone := range t.zones {
		for _, p := range zone.patterns {
			if len(p) > bestLen && matches(zip, p) {
				best = zone.tier
				bestLen = len(p)
				found = true
			}
		}
	}

	return best, found
}

// IsWellFormedZip reports whether zip is exactly five ASCII digits.
// Malformed ZIPs are treated as "no match" by the quoting path, never as
// a fatal error.
func IsWellFormedZip(zip string) bool {
	return len(zip) == zipLength && isDigits(zip)
}

func matches(zip, pattern string) bool {
	return len(pattern) <= len(zip) && zip[:len(pattern)] == pattern
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func copyStrings(src []string) []string {
	return append([]string(nil), src...)
}
