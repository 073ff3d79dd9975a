package teller

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/laleethkumar26/atm-machine-project/model"
)

var errStoreDown = errors.New("store down")

// fakeRepo keeps rows in a map, standing in for the MySQL repo. Setting
// failing makes every write fail, so tests can assert that entities
// stay untouched when persistence does not go through.
type fakeRepo struct {
	rows    map[string]model.Account
	failing bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]model.Account)}
}

func (f *fakeRepo) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeRepo) EnsureSchema(ctx context.Context) error {
	if f.failing {
		return errStoreDown
	}
	return nil
}

func (f *fakeRepo) SeedAccount(ctx context.Context, account model.Account) error {
	if f.failing {
		return errStoreDown
	}
	if _, ok := f.rows[account.AccountNumber]; ok {
		return nil
	}
	f.rows[account.AccountNumber] = account
	return nil
}

func (f *fakeRepo) ListAccounts(ctx context.Context) ([]model.Account, error) {
	if f.failing {
		return nil, errStoreDown
	}
	out := make([]model.Account, 0, len(f.rows))
	for _, account := range f.rows {
		out = append(out, account)
	}
	return out, nil
}

func (f *fakeRepo) InsertAccount(ctx context.Context, account model.Account) error {
	if f.failing {
		return errStoreDown
	}
	if _, ok := f.rows[account.AccountNumber]; ok {
		return ErrAccountExists
	}
	f.rows[account.AccountNumber] = account
	return nil
}

func (f *fakeRepo) UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) error {
	if f.failing {
		return errStoreDown
	}
	account := f.rows[accountNumber]
	account.Balance = balance
	f.rows[accountNumber] = account
	return nil
}

func (f *fakeRepo) UpdatePinDigest(ctx context.Context, accountNumber string, digest string) error {
	if f.failing {
		return errStoreDown
	}
	account := f.rows[accountNumber]
	account.PinDigest = digest
	f.rows[accountNumber] = account
	return nil
}
