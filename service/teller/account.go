package teller

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laleethkumar26/atm-machine-project/auth"
	"github.com/laleethkumar26/atm-machine-project/model"
)

// Account is the in-memory view of one stored account. Every mutator
// validates its input, persists through the repo, and only then updates
// the in-memory state and session log, so a failed store write leaves
// the entity exactly as it was.
type Account struct {
	repo    IRepo
	number  string
	digest  string
	balance decimal.Decimal
	log     []model.Transaction
}

func newAccount(repo IRepo, row model.Account) *Account {
	return &Account{
		repo:    repo,
		number:  row.AccountNumber,
		digest:  row.PinDigest,
		balance: row.Balance,
	}
}

func (a *Account) Number() string {
	return a.number
}

// CheckPIN reports digest equality only; it gives no hint why a
// candidate failed.
func (a *Account) CheckPIN(candidate string) bool {
	return auth.CheckPIN(candidate, a.digest)
}

// Balance returns the current balance. Inquiries are logged events: an
// INQUIRY entry is appended even though nothing changes.
func (a *Account) Balance() decimal.Decimal {
	a.appendLog(model.TxInquiry, decimal.Zero)
	return a.balance
}

// Deposit adds amount to the balance and returns the new balance.
func (a *Account) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return a.balance, ErrBadAmount
	}
	next := a.balance.Add(amount)
	if err := a.repo.UpdateBalance(ctx, a.number, next); err != nil {
		return a.balance, fmt.Errorf("persist deposit: %w", err)
	}
	a.balance = next
	a.appendLog(model.TxDeposit, amount)
	return a.balance, nil
}

// Withdraw subtracts amount from the balance and returns the new
// balance. The balance never goes negative: an amount above the current
// balance is rejected before anything is touched.
func (a *Account) Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return a.balance, ErrBadAmount
	}
	if amount.GreaterThan(a.balance) {
		return a.balance, ErrInsufficientFunds
	}
	next := a.balance.Sub(amount)
	if err := a.repo.UpdateBalance(ctx, a.number, next); err != nil {
		return a.balance, fmt.Errorf("persist withdrawal: %w", err)
	}
	a.balance = next
	a.appendLog(model.TxWithdraw, amount)
	return a.balance, nil
}

// ChangePIN replaces the stored digest after verifying the old PIN. The
// surrounding session stays authenticated.
func (a *Account) ChangePIN(ctx context.Context, oldPIN, newPIN string) error {
	if !a.CheckPIN(oldPIN) {
		return ErrPinMismatch
	}
	if len(newPIN) < MinPINLength {
		return ErrPinTooShort
	}
	digest := auth.HashPIN(newPIN)
	if err := a.repo.UpdatePinDigest(ctx, a.number, digest); err != nil {
		return fmt.Errorf("persist PIN change: %w", err)
	}
	a.digest = digest
	return nil
}

// Transactions returns a copy of the session log in the order the
// operations happened. Mutating the returned slice does not touch the
// live log.
func (a *Account) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(a.log))
	copy(out, a.log)
	return out
}

// Failed deposits and withdrawals never reach here; inquiries do.
func (a *Account) appendLog(kind model.TransactionKind, amount decimal.Decimal) {
	a.log = append(a.log, model.Transaction{
		ID:           uuid.New(),
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: a.balance,
		At:           time.Now(),
	})
}
