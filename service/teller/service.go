package teller

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/laleethkumar26/atm-machine-project/auth"
	"github.com/laleethkumar26/atm-machine-project/config"
	"github.com/laleethkumar26/atm-machine-project/model"
)

const MinPINLength = 4

type IService interface {
	Init(ctx context.Context) error
	Login(accountNumber, pin string) (*Account, error)
	Logout()
	Current() *Account
	CreateAccount(ctx context.Context, accountNumber, pin string) error
}

func NewService(repo IRepo, seeds []config.SeedAccount) IService {
	return &service{
		repo:     repo,
		seeds:    seeds,
		accounts: make(map[string]*Account),
	}
}

// service holds the loaded account set and at most one authenticated
// account at a time.
type service struct {
	repo     IRepo
	seeds    []config.SeedAccount
	accounts map[string]*Account
	current  *Account
}

// Init ensures the accounts table exists, inserts the demo accounts not
// already present, and loads every stored account into memory. It is
// safe to run on every startup.
func (s *service) Init(ctx context.Context) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	err := s.repo.Transact(ctx, func(ctx context.Context) error {
		for _, seed := range s.seeds {
			account := model.Account{
				AccountNumber: seed.AccountNumber,
				PinDigest:     auth.HashPIN(seed.DefaultPIN),
				Balance:       decimal.Zero,
			}
			if err := s.repo.SeedAccount(ctx, account); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	rows, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	for _, row := range rows {
		s.accounts[row.AccountNumber] = newAccount(s.repo, row)
	}
	return nil
}

// Login authenticates against the loaded set. Unknown account numbers
// and wrong PINs report the same error.
func (s *service) Login(accountNumber, pin string) (*Account, error) {
	account, ok := s.accounts[accountNumber]
	if !ok || !account.CheckPIN(pin) {
		return nil, ErrInvalidCredentials
	}
	s.current = account
	return account, nil
}

// Logout drops the authenticated reference only. The account object
// keeps its session log for the rest of the process, so logging back in
// within the same run shows the earlier history.
func (s *service) Logout() {
	s.current = nil
}

func (s *service) Current() *Account {
	return s.current
}

// CreateAccount validates, inserts a zero-balance row, and adds the
// account to the loaded set. It does not log the new account in.
func (s *service) CreateAccount(ctx context.Context, accountNumber, pin string) error {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return ErrEmptyAccountNumber
	}
	if len(pin) < MinPINLength {
		return ErrPinTooShort
	}
	if _, ok := s.accounts[accountNumber]; ok {
		return ErrAccountExists
	}

	row := model.Account{
		AccountNumber: accountNumber,
		PinDigest:     auth.HashPIN(pin),
		Balance:       decimal.Zero,
	}
	if err := s.repo.InsertAccount(ctx, row); err != nil {
		return err
	}
	s.accounts[accountNumber] = newAccount(s.repo, row)
	return nil
}
