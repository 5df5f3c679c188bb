// file: repository/ledger.go

package repository

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
)

// firstAccountNumber is assigned to the first account ever created.
const firstAccountNumber = 1001

// Ledger owns the live account collection, keyed by account number, and the
// monotonic number sequence. A single mutex serializes every mutation, so a
// withdrawal's sufficient-funds check can never interleave with another
// caller's balance change.
type Ledger struct {
	mu         sync.Mutex
	nextNumber int
	accounts   map[int]*model.Account
}

func NewLedger() *Ledger {
	return &Ledger{
		nextNumber: firstAccountNumber,
		accounts:   make(map[int]*model.Account),
	}
}

// CreateAccount assigns the next sequential account number, constructs the
// account and inserts it. Numbers are never reused, even after a closure.
func (l *Ledger) CreateAccount(fullName, address, birthday, gender string, accountType model.AccountType, initialDeposit model.Money, pin string) (*model.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, err := model.NewAccount(l.nextNumber, fullName, address, birthday, gender, accountType, initialDeposit, pin)
	if err != nil {
		return nil, err
	}
	l.accounts[account.AccountNumber] = account
	l.nextNumber++

	logger.Log.WithFields(logrus.Fields{
		"account_number": account.AccountNumber,
		"account_type":   account.AccountType,
	}).Info("Account created")
	return account, nil
}

// FindByNumber returns the owned account instance, so mutations through it
// are visible to every subsequent lookup.
func (l *Ledger) FindByNumber(number int) (*model.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[number]
	if !ok {
		return nil, common.ErrAccountNotFound
	}
	return account, nil
}

// RemoveAccount deletes the account from the collection. The account number
// is retired permanently; the sequence only moves forward.
func (l *Ledger) RemoveAccount(number int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[number]; !ok {
		return common.ErrAccountNotFound
	}
	delete(l.accounts, number)

	logger.Log.WithField("account_number", number).Info("Account closed")
	return nil
}

// Deposit credits amount to the account under the ledger lock and returns
// the new balance.
func (l *Ledger) Deposit(number int, amount model.Money) (model.Money, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[number]
	if !ok {
		return model.Money{}, common.ErrAccountNotFound
	}
	if err := account.Deposit(amount); err != nil {
		return model.Money{}, err
	}
	return account.Balance, nil
}

// Withdraw debits amount from the account under the ledger lock and returns
// the new balance. The balance is unchanged on any failure.
func (l *Ledger) Withdraw(number int, amount model.Money) (model.Money, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[number]
	if !ok {
		return model.Money{}, common.ErrAccountNotFound
	}
	if err := account.Withdraw(amount); err != nil {
		return model.Money{}, err
	}
	return account.Balance, nil
}

// Accounts returns the live accounts ordered by account number.
func (l *Ledger) Accounts() []*model.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*model.Account, 0, len(l.accounts))
	for _, account := range l.accounts {
		out = append(out, account)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AccountNumber < out[j].AccountNumber
	})
	return out
}

func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.accounts)
}

// NextNumber returns the number the next created account will receive.
func (l *Ledger) NextNumber() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.nextNumber
}

// Restore replaces the collection with accounts and resumes the sequence at
// nextNumber. If nextNumber lags behind the accounts present (for example a
// snapshot produced by an older writer), the sequence is raised past the
// highest existing number so numbers stay unique.
func (l *Ledger) Restore(accounts []*model.Account, nextNumber int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.accounts = make(map[int]*model.Account, len(accounts))
	l.nextNumber = firstAccountNumber
	if nextNumber > l.nextNumber {
		l.nextNumber = nextNumber
	}
	for _, account := range accounts {
		l.accounts[account.AccountNumber] = account
		if account.AccountNumber >= l.nextNumber {
			l.nextNumber = account.AccountNumber + 1
		}
	}
}
