// file: model/money.go

package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"go-bank-ledger/common"
)

// Money is an exact monetary amount in major currency units, carried with
// two decimal places. Arithmetic never goes through binary floating point.
type Money struct {
	value decimal.Decimal
}

// MoneyFromMajorUnits parses a decimal string such as "5000" or "100.50".
// Negative amounts and amounts with sub-cent precision are rejected.
func MoneyFromMajorUnits(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, common.ErrInvalidAmount
	}
	if d.IsNegative() || !d.Equal(d.Truncate(2)) {
		return Money{}, common.ErrInvalidAmount
	}
	return Money{value: d}, nil
}

// MoneyFromInt builds an amount from a whole number of major units.
func MoneyFromInt(units int64) Money {
	return Money{value: decimal.NewFromInt(units)}
}

func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value)}
}

// Sub returns the exact difference. The result may be negative; callers
// enforce non-negativity where the business rule requires it.
func (m Money) Sub(other Money) Money {
	return Money{value: m.value.Sub(other.value)}
}

// Cmp returns -1, 0 or 1 as m is less than, equal to or greater than other.
func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

// String renders the amount with exactly two decimal places, e.g. "5100.50".
func (m Money) String() string {
	return m.value.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return common.ErrInvalidAmount
	}
	m.value = d
	return nil
}
