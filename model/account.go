// file: model/account.go

package model

import (
	"go-bank-ledger/common"
)

type AccountType string

const (
	Savings AccountType = "Savings"
	Current AccountType = "Current"
)

// MinimumInitialDeposit returns the opening-deposit floor for the type.
func (t AccountType) MinimumInitialDeposit() Money {
	switch t {
	case Current:
		return MoneyFromInt(10000)
	default:
		return MoneyFromInt(5000)
	}
}

func (t AccountType) Valid() bool {
	return t == Savings || t == Current
}

// Account represents one bank account. The number and profile fields are
// immutable after creation; only the balance changes, through Deposit and
// Withdraw.
type Account struct {
	AccountNumber int         `json:"account_number"`
	FullName      string      `json:"full_name"`
	Address       string      `json:"address"`
	Birthday      string      `json:"birthday"`
	Gender        string      `json:"gender"`
	AccountType   AccountType `json:"account_type"`
	Balance       Money       `json:"balance"`
	Credential    Credential  `json:"-"`
}

// NewAccount builds an account with the given number and a fresh credential
// for pin. The initial deposit must meet the type-specific minimum.
func NewAccount(number int, fullName, address, birthday, gender string, accountType AccountType, initialDeposit Money, pin string) (*Account, error) {
	credential, err := NewCredential(pin)
	if err != nil {
		return nil, err
	}
	if initialDeposit.Cmp(accountType.MinimumInitialDeposit()) < 0 {
		return nil, common.ErrInsufficientInitialDeposit
	}
	return &Account{
		AccountNumber: number,
		FullName:      fullName,
		Address:       address,
		Birthday:      birthday,
		Gender:        gender,
		AccountType:   accountType,
		Balance:       initialDeposit,
		Credential:    credential,
	}, nil
}

// Deposit adds amount to the balance. The amount must be positive; there is
// no upper bound on the balance. Callers serialize access via the ledger.
func (a *Account) Deposit(amount Money) error {
	if !amount.IsPositive() {
		return common.ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw removes amount from the balance. The sufficient-funds check and
// the mutation happen together under the ledger lock, so a failed withdrawal
// never changes the balance.
func (a *Account) Withdraw(amount Money) error {
	if !amount.IsPositive() {
		return common.ErrInvalidAmount
	}
	if a.Balance.Cmp(amount) < 0 {
		return common.ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// VerifyPIN reports whether candidate matches the account's credential.
func (a *Account) VerifyPIN(candidate string) (bool, error) {
	return a.Credential.Verify(candidate)
}
