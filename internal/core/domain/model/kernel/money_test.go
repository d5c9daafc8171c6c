package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromCents(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := kernel.MoneyFromCents(1234)
		require.NoError(t, err)
		assert.Equal(t, int64(1234), m.Cents())
		assert.Equal(t, "12.34", m.String())
	})

	t.Run("zero", func(t *testing.T) {
		m, err := kernel.MoneyFromCents(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("negative", func(t *testing.T) {
		_, err := kernel.MoneyFromCents(-1)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})
}

func TestMoneyFromString(t *testing.T) {
	cases := []struct {
		input string
		cents int64
		valid bool
	}{
		{"12.34", 1234, true},
		{"5", 500, true},
		{"0.99", 99, true},
		{"3.5", 350, true},
		{"0.00", 0, true},
		{"-1.00", 0, false},
		{"12.345", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"12.", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			m, err := kernel.MoneyFromString(tc.input)
			if !tc.valid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cents, m.Cents())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a, _ := kernel.MoneyFromCents(250)
	b, _ := kernel.MoneyFromCents(199)

	assert.Equal(t, int64(449), a.Add(b).Cents())
	assert.Equal(t, int64(750), a.MulQuantity(3).Cents())
	assert.Equal(t, int64(0), a.MulQuantity(0).Cents())
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.MoneyFromCents(100)
	b, _ := kernel.MoneyFromCents(100)
	c, _ := kernel.MoneyFromCents(101)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
