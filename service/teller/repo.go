package teller

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/laleethkumar26/atm-machine-project/model"
)

type IRepo interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
	EnsureSchema(ctx context.Context) error
	SeedAccount(ctx context.Context, account model.Account) error
	ListAccounts(ctx context.Context) ([]model.Account, error)
	InsertAccount(ctx context.Context, account model.Account) error
	UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) error
	UpdatePinDigest(ctx context.Context, accountNumber string, digest string) error
}

func NewRepo(db *sqlx.DB) IRepo {
	return &repo{
		db: db,
	}
}

type repo struct {
	db *sqlx.DB
}

func (r repo) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = fn(ctx)
	if err != nil {
		return err
	}
	return tx.Commit()
}

var ensureSchemaQuery = `
CREATE TABLE IF NOT EXISTS accounts (
	account_number VARCHAR(32) PRIMARY KEY,
	pin_digest CHAR(64) NOT NULL,
	balance DECIMAL(15,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`

func (r repo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, ensureSchemaQuery)
	return err
}

// INSERT IGNORE keeps seeding idempotent: an account number already
// present is skipped, never overwritten.
var seedAccountQuery = "INSERT IGNORE INTO accounts (account_number, pin_digest, balance) VALUES (:account_number, :pin_digest, :balance)"

func (r repo) SeedAccount(ctx context.Context, account model.Account) error {
	_, err := r.db.NamedExecContext(ctx, seedAccountQuery, account)
	return err
}

var listAccountsQuery = "SELECT account_number, pin_digest, balance, created_at, updated_at FROM accounts"

func (r repo) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var res []model.Account
	err := r.db.SelectContext(ctx, &res, listAccountsQuery)
	return res, err
}

// mysqlDuplicateEntry is MySQL error 1062 (ER_DUP_ENTRY).
const mysqlDuplicateEntry = 1062

var insertAccountQuery = "INSERT INTO accounts (account_number, pin_digest, balance) VALUES (:account_number, :pin_digest, :balance)"

func (r repo) InsertAccount(ctx context.Context, account model.Account) error {
	_, err := r.db.NamedExecContext(ctx, insertAccountQuery, account)
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrAccountExists
	}
	return err
}

var updateBalanceQuery = "UPDATE accounts SET balance = ? WHERE account_number = ?"

func (r repo) UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) error {
	_, err := r.db.ExecContext(ctx, updateBalanceQuery, balance, accountNumber)
	return err
}

var updatePinDigestQuery = "UPDATE accounts SET pin_digest = ? WHERE account_number = ?"

func (r repo) UpdatePinDigest(ctx context.Context, accountNumber string, digest string) error {
	_, err := r.db.ExecContext(ctx, updatePinDigestQuery, digest, accountNumber)
	return err
}
