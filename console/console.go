package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/laleethkumar26/atm-machine-project/service/teller"
)

// Console drives the menu loop over plain text I/O. It owns no balance
// or PIN logic: every action is dispatched to the teller service and
// the result printed. Reader and writer are injected so sessions can be
// scripted in tests.
type Console struct {
	svc      teller.IService
	in       *bufio.Scanner
	out      io.Writer
	currency string
}

func New(svc teller.IService, in io.Reader, out io.Writer, currency string) *Console {
	return &Console{
		svc:      svc,
		in:       bufio.NewScanner(in),
		out:      out,
		currency: currency,
	}
}

// Run loops on the top-level menu until the operator exits or the input
// stream ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printf("\n==== ATM ====\n")
		c.printf("1. Login\n2. Create Account\n3. Exit\n")
		choice, ok := c.prompt("Select an option: ")
		if !ok {
			return c.in.Err()
		}
		switch choice {
		case "1":
			c.login(ctx)
		case "2":
			c.createAccount(ctx)
		case "3":
			c.printf("Goodbye.\n")
			return nil
		default:
			c.printf("Unknown option %q.\n", choice)
		}
	}
}

func (c *Console) login(ctx context.Context) {
	number, ok := c.prompt("Account number: ")
	if !ok {
		return
	}
	pin, ok := c.prompt("PIN: ")
	if !ok {
		return
	}
	account, err := c.svc.Login(number, pin)
	if err != nil {
		c.printf("Login failed: %v.\n", err)
		return
	}
	c.printf("Welcome, account %s.\n", account.Number())
	c.session(ctx, account)
}

func (c *Console) createAccount(ctx context.Context) {
	number, ok := c.prompt("New account number: ")
	if !ok {
		return
	}
	pin, ok := c.prompt("PIN (at least 4 characters): ")
	if !ok {
		return
	}
	if err := c.svc.CreateAccount(ctx, number, pin); err != nil {
		c.printf("Could not create account: %v.\n", err)
		return
	}
	c.printf("Account %s created. You can now log in.\n", strings.TrimSpace(number))
}

func (c *Console) session(ctx context.Context, account *teller.Account) {
	for {
		c.printf("\n---- Account %s ----\n", account.Number())
		c.printf("1. Balance Inquiry\n2. Withdraw\n3. Deposit\n4. Session History\n5. Change PIN\n6. Logout\n")
		choice, ok := c.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.printf("Current balance: %s\n", c.money(account.Balance()))
		case "2":
			amount, err := c.promptAmount("Amount to withdraw: ")
			if err != nil {
				c.printf("%v.\n", err)
				continue
			}
			balance, err := account.Withdraw(ctx, amount)
			if err != nil {
				c.printf("Withdrawal failed: %v.\n", err)
				continue
			}
			c.printf("Withdrew %s. New balance: %s\n", c.money(amount), c.money(balance))
		case "3":
			amount, err := c.promptAmount("Amount to deposit: ")
			if err != nil {
				c.printf("%v.\n", err)
				continue
			}
			balance, err := account.Deposit(ctx, amount)
			if err != nil {
				c.printf("Deposit failed: %v.\n", err)
				continue
			}
			c.printf("Deposited %s. New balance: %s\n", c.money(amount), c.money(balance))
		case "4":
			c.printHistory(account)
		case "5":
			c.changePIN(ctx, account)
		case "6":
			c.svc.Logout()
			c.printf("Logged out.\n")
			return
		default:
			c.printf("Unknown option %q.\n", choice)
		}
	}
}

func (c *Console) printHistory(account *teller.Account) {
	transactions := account.Transactions()
	if len(transactions) == 0 {
		c.printf("No transactions this session.\n")
		return
	}
	for i, tx := range transactions {
		c.printf("%2d. %-8s  amount %s  balance %s  at %s\n",
			i+1, tx.Kind, c.money(tx.Amount), c.money(tx.BalanceAfter),
			tx.At.Format("2006-01-02 15:04:05"),
		)
	}
}

func (c *Console) changePIN(ctx context.Context, account *teller.Account) {
	oldPIN, ok := c.prompt("Current PIN: ")
	if !ok {
		return
	}
	newPIN, ok := c.prompt("New PIN (at least 4 characters): ")
	if !ok {
		return
	}
	if err := account.ChangePIN(ctx, oldPIN, newPIN); err != nil {
		c.printf("PIN change failed: %v.\n", err)
		return
	}
	c.printf("PIN changed.\n")
}

func (c *Console) promptAmount(label string) (decimal.Decimal, error) {
	raw, ok := c.prompt(label)
	if !ok {
		return decimal.Zero, fmt.Errorf("no input")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}

func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) money(v decimal.Decimal) string {
	return c.currency + v.StringFixed(2)
}
