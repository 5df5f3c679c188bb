package common

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount indicates an amount that is not a positive value with
	// at most two decimal places.
	ErrInvalidAmount = errors.New("amount must be a positive value with at most two decimal places")
	// ErrInvalidPin indicates a PIN that is not exactly 6 digits.
	ErrInvalidPin = errors.New("pin must be exactly 6 digits")
	// ErrInsufficientInitialDeposit indicates an opening deposit below the
	// minimum for the chosen account type.
	ErrInsufficientInitialDeposit = errors.New("initial deposit is below the minimum for this account type")
	// ErrInsufficientFunds indicates a withdrawal larger than the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotFound indicates that no account exists with the given number.
	ErrAccountNotFound = errors.New("account not found")
	// ErrCorruptCredential indicates stored credential data with the wrong shape.
	ErrCorruptCredential = errors.New("stored credential is malformed")
)

// PersistenceError reports a failed attempt to write the ledger snapshot.
// The previous on-disk snapshot is left intact when this is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
