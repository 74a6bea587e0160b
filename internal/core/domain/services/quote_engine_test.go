package services_test

import (
	"testing"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newZone(t *testing.T, name, fee, minOrder string, miles int, patterns ...string) delivery.Zone {
	t.Helper()
	tier, err := delivery.NewTier(name, money(t, fee), money(t, minOrder), miles)
	require.NoError(t, err)
	zone, err := delivery.NewZone(tier, patterns)
	require.NoError(t, err)
	return zone
}

func newEngine(t *testing.T) services.QuoteEngine {
	t.Helper()
	table, err := delivery.NewTable("2026-08-01", []delivery.Zone{
		newZone(t, "Zone A", "5.00", "25.00", 5, "78751", "78752"),
		newZone(t, "Zone B", "8.50", "40.00", 12, "787"),
	})
	require.NoError(t, err)
	return services.NewQuoteEngine(table)
}

func TestQuoteEngine_Quote(t *testing.T) {
	engine := newEngine(t)

	t.Run("should allow delivery when subtotal meets the zone minimum", func(t *testing.T) {
		quote := engine.Quote("78751", money(t, "30.00"))

		assert.True(t, quote.Allowed())
		assert.Equal(t, "Zone A", quote.TierName())
		assert.Equal(t, "5.00", quote.Fee().String())
		assert.Equal(t, "25.00", quote.MinOrder().String())
		assert.Equal(t, 5, quote.DistanceMiles())
		assert.Empty(t, quote.Reason())
	})

	t.Run("should reject below-minimum subtotal but still report fee and minimum", func(t *testing.T) {
		quote := engine.Quote("78751", money(t, "10.00"))

		assert.False(t, quote.Allowed())
		assert.Equal(t, delivery.ReasonMinimumNotMet, quote.Reason())
		assert.Equal(t, "Zone A", quote.TierName())
		assert.Equal(t, "5.00", quote.Fee().String())
		assert.Equal(t, "25.00", quote.MinOrder().String())
	})

	t.Run("subtotal exactly at the minimum is allowed", func(t *testing.T) {
		quote := engine.Quote("78751", money(t, "25.00"))

		assert.True(t, quote.Allowed())
	})

	t.Run("prefix pattern serves every ZIP that starts with it", func(t *testing.T) {
		quote := engine.Quote("78799", money(t, "45.00"))

		assert.True(t, quote.Allowed())
		assert.Equal(t, "Zone B", quote.TierName())
		assert.Equal(t, "8.50", quote.Fee().String())
	})

	t.Run("exact ZIP pattern beats an overlapping prefix", func(t *testing.T) {
		quote := engine.Quote("78752", money(t, "30.00"))

		assert.True(t, quote.Allowed())
		assert.Equal(t, "Zone A", quote.TierName())
	})

	t.Run("should reject ZIP outside the service area", func(t *testing.T) {
		quote := engine.Quote("99999", money(t, "100.00"))

		assert.False(t, quote.Allowed())
		assert.Equal(t, delivery.ReasonOutsideServiceArea, quote.Reason())
		assert.Empty(t, quote.TierName())
		assert.True(t, quote.Fee().IsZero())
	})

	t.Run("should reject malformed ZIPs", func(t *testing.T) {
		for _, zip := range []string{"", "1234", "123456", "787ab", "78-51"} {
			t.Run("zip "+zip, func(t *testing.T) {
				quote := engine.Quote(zip, money(t, "100.00"))

				assert.False(t, quote.Allowed())
				assert.Equal(t, delivery.ReasonInvalidZip, quote.Reason())
			})
		}
	})

	t.Run("quoting is deterministic for the same inputs", func(t *testing.T) {
		first := engine.Quote("78751", money(t, "30.00"))
		second := engine.Quote("78751", money(t, "30.00"))

		assert.Equal(t, first, second)
	})
}

func TestQuoteEngine_TableVersion(t *testing.T) {
	engine := newEngine(t)

	assert.Equal(t, "2026-08-01", engine.TableVersion())
}
