// Package zonecfg loads the versioned delivery-zone table from its JSON
// configuration file. The table is a deployment artifact: it is read once at
// startup and handed to the quote engine, never mutated at runtime.
package zonecfg

import (
	"encoding/json"
	"fmt"
	"os"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type tableDTO struct {
	Version string    `json:"version"`
	Zones   []zoneDTO `json:"zones"`
}

type zoneDTO struct {
	Name          string          `json:"name"`
	Fee           decimal.Decimal `json:"fee"`
	MinOrder      decimal.Decimal `json:"min_order"`
	DistanceMiles int             `json:"distance_miles"`
	Patterns      []string        `json:"patterns"`
}

// Load reads a zone table from the given JSON file.
// Zone declaration order is preserved because it is the documented tie-breaker
// for overlapping patterns of equal specificity.
func Load(path string) (delivery.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return delivery.Table{}, fmt.Errorf("failed to read zone table %s: %w", path, err)
	}

	var dto tableDTO
	if err = json.Unmarshal(data, &dto); err != nil {
		return delivery.Table{}, fmt.Errorf("failed to parse zone table %s: %w", path, err)
	}

	zones := make([]delivery.Zone, 0, len(dto.Zones))
	for _, zoneDef := range dto.Zones {
		fee, moneyErr := kernel.NewMoney(zoneDef.Fee)
		if moneyErr != nil {
			return delivery.Table{}, fmt.Errorf("zone %q: invalid fee: %w", zoneDef.Name, moneyErr)
		}
		minOrder, moneyErr := kernel.NewMoney(zoneDef.MinOrder)
		if moneyErr != nil {
			return delivery.Table{}, fmt.Errorf("zone %q: invalid min order: %w", zoneDef.Name, moneyErr)
		}

		tier, tierErr := delivery.NewTier(zoneDef.Name, fee, minOrder, zoneDef.DistanceMiles)
		if tierErr != nil {
			return delivery.Table{}, fmt.Errorf("zone %q: %w", zoneDef.Name, tierErr)
		}

		zone, zoneErr := delivery.NewZone(tier, zoneDef.Patterns)
		if zoneErr != nil {
			return delivery.Table{}, fmt.Errorf("zone %q: %w", zoneDef.Name, zoneErr)
		}
		zones = append(zones, zone)
	}

	table, err := delivery.NewTable(dto.Version, zones)
	if err != nil {
		return delivery.Table{}, fmt.Errorf("invalid zone table %s: %w", path, err)
	}

	return table, nil
}
