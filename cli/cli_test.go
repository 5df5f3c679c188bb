// file: cli/cli_test.go

package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-bank-ledger/config"
	"go-bank-ledger/repository"
	"go-bank-ledger/service"
)

// TestCLISession drives a scripted session through the menu: create an
// account, check the balance, deposit, then attempt an overdraft.
func TestCLISession(t *testing.T) {
	config.AppConfig.JWT.SecretKey = "test-secret"
	config.AppConfig.JWT.SessionMinutes = 5

	ledger := repository.NewLedger()
	store := repository.NewFileStore(filepath.Join(t.TempDir(), "accounts.dat"))
	accountService := service.NewAccountService(ledger, store)
	authService := service.NewAuthService(ledger)

	input := strings.Join([]string{
		"1",
		"Juan dela Cruz", "Manila", "01/01/1990", "M", "5000", "123456", "Savings",
		"2",
		"1001", "123456",
		"3",
		"1001", "123456", "100.50",
		"4",
		"1001", "123456", "6000.00",
		"7",
	}, "\n") + "\n"

	var out bytes.Buffer
	New(accountService, authService, strings.NewReader(input), &out).Run()

	text := out.String()
	assert.Contains(t, text, "Account created successfully! Account Number: 1001")
	assert.Contains(t, text, "Balance: 5000.00")
	assert.Contains(t, text, "Deposit successful! New balance: 5100.50")
	assert.Contains(t, text, "insufficient funds")
}

func TestCLIWrongPinDenied(t *testing.T) {
	config.AppConfig.JWT.SecretKey = "test-secret"
	config.AppConfig.JWT.SessionMinutes = 5

	ledger := repository.NewLedger()
	store := repository.NewFileStore(filepath.Join(t.TempDir(), "accounts.dat"))
	accountService := service.NewAccountService(ledger, store)
	authService := service.NewAuthService(ledger)

	input := strings.Join([]string{
		"1",
		"Juan dela Cruz", "Manila", "01/01/1990", "M", "5000", "123456", "Savings",
		"2",
		"1001", "999999",
		"7",
	}, "\n") + "\n"

	var out bytes.Buffer
	New(accountService, authService, strings.NewReader(input), &out).Run()

	assert.Contains(t, out.String(), "Access denied")
	assert.NotContains(t, out.String(), "Balance: 5000.00")
}
