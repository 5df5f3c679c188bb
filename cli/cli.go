// file: cli/cli.go

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-bank-ledger/model"
	"go-bank-ledger/service"
)

// CLI is the terminal front-end. It holds no business state; it collects
// input, invokes the services and renders their outcomes.
type CLI struct {
	accounts *service.AccountService
	auth     *service.AuthService
	in       *bufio.Reader
	out      io.Writer
}

func New(accounts *service.AccountService, auth *service.AuthService, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		accounts: accounts,
		auth:     auth,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run shows the main menu until the user exits or input ends.
func (c *CLI) Run() {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "===== Banking System =====")
		fmt.Fprintln(c.out, "1) Create Account")
		fmt.Fprintln(c.out, "2) Balance Inquiry")
		fmt.Fprintln(c.out, "3) Deposit")
		fmt.Fprintln(c.out, "4) Withdraw")
		fmt.Fprintln(c.out, "5) Account Information")
		fmt.Fprintln(c.out, "6) Close Account")
		fmt.Fprintln(c.out, "7) Exit")

		choice, ok := c.prompt("Select an option")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.createAccount()
		case "2":
			c.balanceInquiry()
		case "3":
			c.deposit()
		case "4":
			c.withdraw()
		case "5":
			c.accountInfo()
		case "6":
			c.closeAccount()
		case "7":
			return
		default:
			fmt.Fprintln(c.out, "Invalid selection!")
		}
	}
}

func (c *CLI) createAccount() {
	req := model.OpenAccountRequest{}
	fields := []struct {
		label string
		dest  *string
	}{
		{"Full Name", &req.FullName},
		{"Address", &req.Address},
		{"Birthday (DD/MM/YYYY)", &req.Birthday},
		{"Gender", &req.Gender},
		{"Initial Deposit", &req.InitialDeposit},
		{"Pin (6 digits)", &req.Pin},
	}
	for _, f := range fields {
		value, ok := c.prompt(f.label)
		if !ok {
			return
		}
		*f.dest = value
	}
	accountType, ok := c.prompt("Account Type (Savings/Current)")
	if !ok {
		return
	}
	req.AccountType = model.AccountType(accountType)

	account, err := c.accounts.OpenAccount(req)
	if err != nil {
		fmt.Fprintf(c.out, "Could not create account: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Account created successfully! Account Number: %d\n", account.AccountNumber)
}

// login prompts for an account number and PIN and exchanges them for a
// session token.
func (c *CLI) login() (int, string, bool) {
	numberText, ok := c.prompt("Account Number")
	if !ok {
		return 0, "", false
	}
	number, err := strconv.Atoi(numberText)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid account number!")
		return 0, "", false
	}
	pin, ok := c.prompt("Enter PIN for account access")
	if !ok {
		return 0, "", false
	}
	token, err := c.auth.Login(number, pin)
	if err != nil {
		fmt.Fprintf(c.out, "Access denied: %v\n", err)
		return 0, "", false
	}
	return number, token, true
}

func (c *CLI) balanceInquiry() {
	number, token, ok := c.login()
	if !ok {
		return
	}
	if err := c.auth.Authorize(token, number); err != nil {
		fmt.Fprintf(c.out, "Access denied: %v\n", err)
		return
	}
	balance, err := c.accounts.Balance(number)
	if err != nil {
		fmt.Fprintf(c.out, "Could not read balance: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Balance: %s\n", balance)
}

func (c *CLI) deposit() {
	number, token, ok := c.login()
	if !ok {
		return
	}
	amount, ok := c.prompt("Deposit Amount")
	if !ok {
		return
	}
	if err := c.auth.Authorize(token, number); err != nil {
		fmt.Fprintf(c.out, "Access denied: %v\n", err)
		return
	}
	balance, err := c.accounts.Deposit(number, amount)
	if err != nil {
		fmt.Fprintf(c.out, "Deposit failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Deposit successful! New balance: %s\n", balance)
}

func (c *CLI) withdraw() {
	number, token, ok := c.login()
	if !ok {
		return
	}
	amount, ok := c.prompt("Withdrawal Amount")
	if !ok {
		return
	}
	if err := c.auth.Authorize(token, number); err != nil {
		fmt.Fprintf(c.out, "Access denied: %v\n", err)
		return
	}
	balance, err := c.accounts.Withdraw(number, amount)
	if err != nil {
		fmt.Fprintf(c.out, "Withdrawal failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Withdrawal successful! New balance: %s\n", balance)
}

func (c *CLI) accountInfo() {
	number, token, ok := c.login()
	if !ok {
		return
	}
	if err := c.auth.Authorize(token, number); err != nil {
		fmt.Fprintf(c.out, "Access denied: %v\n", err)
		return
	}
	account, err := c.accounts.AccountInfo(number)
	if err != nil {
		fmt.Fprintf(c.out, "Could not read account: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Account Number: %d\n", account.AccountNumber)
	fmt.Fprintf(c.out, "Full Name: %s\n", account.FullName)
	fmt.Fprintf(c.out, "Address: %s\n", account.Address)
	fmt.Fprintf(c.out, "Birthday: %s\n", account.Birthday)
	fmt.Fprintf(c.out, "Gender: %s\n", account.Gender)
	fmt.Fprintf(c.out, "Account Type: %s\n", account.AccountType)
	fmt.Fprintf(c.out, "Balance: %s\n", account.Balance)
}

func (c *CLI) closeAccount() {
	number, token, ok := c.login()
	if !ok {
		return
	}
	if err := c.auth.Authorize(token, number); err != nil {
		fmt.Fprintf(c.out, "Access denied: %v\n", err)
		return
	}
	if err := c.accounts.CloseAccount(number); err != nil {
		fmt.Fprintf(c.out, "Could not close account: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Account closed.")
}

// prompt reads one line of input; ok is false once input is exhausted.
func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprintf(c.out, "%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}
