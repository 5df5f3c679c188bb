// file: service/account_service.go

package service

import (
	"github.com/sirupsen/logrus"

	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
)

// AccountService handles the business operations a front-end invokes against
// the ledger: open, deposit, withdraw, balance inquiry, account information,
// closure and persistence.
type AccountService struct {
	ledger *repository.Ledger
	store  repository.ILedgerStore
}

func NewAccountService(ledger *repository.Ledger, store repository.ILedgerStore) *AccountService {
	return &AccountService{
		ledger: ledger,
		store:  store,
	}
}

// OpenAccount validates the request and creates the account. The assigned
// account number is on the returned account.
func (s *AccountService) OpenAccount(req model.OpenAccountRequest) (*model.Account, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	initialDeposit, err := model.MoneyFromMajorUnits(req.InitialDeposit)
	if err != nil {
		return nil, err
	}

	account, err := s.ledger.CreateAccount(req.FullName, req.Address, req.Birthday, req.Gender, req.AccountType, initialDeposit, req.Pin)
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_number": account.AccountNumber,
		"account_type":   account.AccountType,
	}).Info("Account opened")
	return account, nil
}

// Deposit credits the given decimal amount and returns the new balance.
func (s *AccountService) Deposit(accountNumber int, amount string) (model.Money, error) {
	credit, err := model.MoneyFromMajorUnits(amount)
	if err != nil {
		return model.Money{}, err
	}

	balance, err := s.ledger.Deposit(accountNumber, credit)
	if err != nil {
		return model.Money{}, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"amount":         credit.String(),
	}).Info("Deposit completed")
	return balance, nil
}

// Withdraw debits the given decimal amount and returns the new balance. The
// balance is untouched when the funds are insufficient.
func (s *AccountService) Withdraw(accountNumber int, amount string) (model.Money, error) {
	debit, err := model.MoneyFromMajorUnits(amount)
	if err != nil {
		return model.Money{}, err
	}

	balance, err := s.ledger.Withdraw(accountNumber, debit)
	if err != nil {
		return model.Money{}, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"amount":         debit.String(),
	}).Info("Withdrawal completed")
	return balance, nil
}

// Balance returns the current balance of the account.
func (s *AccountService) Balance(accountNumber int) (model.Money, error) {
	account, err := s.ledger.FindByNumber(accountNumber)
	if err != nil {
		return model.Money{}, err
	}
	return account.Balance, nil
}

// AccountInfo returns the account for display.
func (s *AccountService) AccountInfo(accountNumber int) (*model.Account, error) {
	return s.ledger.FindByNumber(accountNumber)
}

// VerifyPIN checks a candidate PIN against the account's stored credential.
func (s *AccountService) VerifyPIN(accountNumber int, pin string) (bool, error) {
	account, err := s.ledger.FindByNumber(accountNumber)
	if err != nil {
		return false, err
	}
	return account.VerifyPIN(pin)
}

// CloseAccount removes the account from the ledger. Its number is retired.
func (s *AccountService) CloseAccount(accountNumber int) error {
	return s.ledger.RemoveAccount(accountNumber)
}

// SaveAll writes the current ledger state through the store.
func (s *AccountService) SaveAll() error {
	if err := s.store.Save(s.ledger); err != nil {
		logger.Log.WithError(err).Error("Failed to save ledger")
		return err
	}
	return nil
}
