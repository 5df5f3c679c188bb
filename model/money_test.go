// file: model/money_test.go

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bank-ledger/common"
)

func TestMoneyFromMajorUnits(t *testing.T) {
	t.Run("whole units", func(t *testing.T) {
		m, err := MoneyFromMajorUnits("5000")
		require.NoError(t, err)
		assert.Equal(t, "5000.00", m.String())
	})

	t.Run("two decimal places", func(t *testing.T) {
		m, err := MoneyFromMajorUnits("100.50")
		require.NoError(t, err)
		assert.Equal(t, "100.50", m.String())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := MoneyFromMajorUnits("-1")
		assert.ErrorIs(t, err, common.ErrInvalidAmount)
	})

	t.Run("sub-cent precision rejected", func(t *testing.T) {
		_, err := MoneyFromMajorUnits("1.005")
		assert.ErrorIs(t, err, common.ErrInvalidAmount)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := MoneyFromMajorUnits("ten pesos")
		assert.ErrorIs(t, err, common.ErrInvalidAmount)
	})
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	// 1000 deposits of 0.01 must sum to exactly 10.00, with no float drift.
	cent, err := MoneyFromMajorUnits("0.01")
	require.NoError(t, err)

	var total Money
	for i := 0; i < 1000; i++ {
		total = total.Add(cent)
	}
	assert.Equal(t, "10.00", total.String())

	rest := total.Sub(MoneyFromInt(10))
	assert.Equal(t, 0, rest.Cmp(Money{}))
}

func TestMoneyCmp(t *testing.T) {
	small, _ := MoneyFromMajorUnits("99.99")
	big, _ := MoneyFromMajorUnits("100.00")

	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
	assert.Equal(t, 0, big.Cmp(MoneyFromInt(100)))
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m, err := MoneyFromMajorUnits("5100.50")
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"5100.50"`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 0, m.Cmp(back))
	assert.Equal(t, "5100.50", back.String())
}
