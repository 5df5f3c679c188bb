// file: model/account_test.go

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bank-ledger/common"
)

func newTestAccount(t *testing.T, accountType AccountType, deposit string) *Account {
	t.Helper()
	amount, err := MoneyFromMajorUnits(deposit)
	require.NoError(t, err)
	account, err := NewAccount(1001, "Juan dela Cruz", "Manila", "01/01/1990", "M", accountType, amount, "123456")
	require.NoError(t, err)
	return account
}

func TestNewAccount(t *testing.T) {
	t.Run("savings at the minimum", func(t *testing.T) {
		account := newTestAccount(t, Savings, "5000")
		assert.Equal(t, "5000.00", account.Balance.String())
		assert.Equal(t, Savings, account.AccountType)
	})

	t.Run("savings below the minimum", func(t *testing.T) {
		amount, err := MoneyFromMajorUnits("4999")
		require.NoError(t, err)
		_, err = NewAccount(1001, "Juan dela Cruz", "Manila", "01/01/1990", "M", Savings, amount, "123456")
		assert.ErrorIs(t, err, common.ErrInsufficientInitialDeposit)
	})

	t.Run("current below the minimum", func(t *testing.T) {
		amount, err := MoneyFromMajorUnits("9999.99")
		require.NoError(t, err)
		_, err = NewAccount(1001, "Juan dela Cruz", "Manila", "01/01/1990", "M", Current, amount, "123456")
		assert.ErrorIs(t, err, common.ErrInsufficientInitialDeposit)
	})

	t.Run("bad pin propagates", func(t *testing.T) {
		amount, err := MoneyFromMajorUnits("5000")
		require.NoError(t, err)
		_, err = NewAccount(1001, "Juan dela Cruz", "Manila", "01/01/1990", "M", Savings, amount, "12345")
		assert.ErrorIs(t, err, common.ErrInvalidPin)
	})
}

func TestAccountDepositAndWithdraw(t *testing.T) {
	account := newTestAccount(t, Savings, "5000")

	deposit, _ := MoneyFromMajorUnits("100.50")
	require.NoError(t, account.Deposit(deposit))
	assert.Equal(t, "5100.50", account.Balance.String())

	// A withdrawal beyond the balance fails and leaves it untouched.
	tooMuch, _ := MoneyFromMajorUnits("6000.00")
	err := account.Withdraw(tooMuch)
	assert.ErrorIs(t, err, common.ErrInsufficientFunds)
	assert.Equal(t, "5100.50", account.Balance.String())

	require.NoError(t, account.Withdraw(deposit))
	assert.Equal(t, "5000.00", account.Balance.String())
}

func TestAccountRejectsNonPositiveAmounts(t *testing.T) {
	account := newTestAccount(t, Savings, "5000")

	zero, _ := MoneyFromMajorUnits("0")
	assert.ErrorIs(t, account.Deposit(zero), common.ErrInvalidAmount)
	assert.ErrorIs(t, account.Withdraw(zero), common.ErrInvalidAmount)
	assert.Equal(t, "5000.00", account.Balance.String())
}

func TestAccountVerifyPIN(t *testing.T) {
	account := newTestAccount(t, Current, "10000")

	ok, err := account.VerifyPIN("123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = account.VerifyPIN("000000")
	require.NoError(t, err)
	assert.False(t, ok)
}
