package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Constructors(t *testing.T) {
	t.Run("should create from decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(34.99))

		require.NoError(t, err)
		assert.Equal(t, "34.99", m.String())
	})

	t.Run("should create from string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("5.00")

		require.NoError(t, err)
		assert.Equal(t, "5.00", m.String())
	})

	t.Run("should create from float", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(25)

		require.NoError(t, err)
		assert.Equal(t, "25.00", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-1.50")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("five dollars")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("29.99")
		b, _ := kernel.NewMoneyFromString("5.00")

		assert.Equal(t, "34.99", a.Add(b).String())
	})

	t.Run("MultiplyInt", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("9.99")

		assert.Equal(t, "29.97", price.MultiplyInt(3).String())
	})

	t.Run("LessThan", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("10.00")
		b, _ := kernel.NewMoneyFromString("25.00")

		assert.True(t, a.LessThan(b))
		assert.False(t, b.LessThan(a))
		assert.False(t, a.LessThan(a))
	})

	t.Run("IsEqual is numeric not textual", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("5")
		b, _ := kernel.NewMoneyFromString("5.00")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("zero money", func(t *testing.T) {
		assert.True(t, kernel.ZeroMoney().IsZero())
		assert.Equal(t, "0.00", kernel.ZeroMoney().String())
	})
}

func TestMoney_Cents(t *testing.T) {
	testCases := []struct {
		amount string
		cents  int64
	}{
		{"0.00", 0},
		{"5.00", 500},
		{"34.99", 3499},
		{"0.01", 1},
		{"100", 10000},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			m, err := kernel.NewMoneyFromString(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.cents, m.Cents())
		})
	}
}
