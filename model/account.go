package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Account is one row of the accounts table. The PIN is never stored in
// clear form, only its digest.
type Account struct {
	AccountNumber string          `db:"account_number"`
	PinDigest     string          `db:"pin_digest"`
	Balance       decimal.Decimal `db:"balance"`
	CreatedAt     sql.NullTime    `db:"created_at"`
	UpdatedAt     sql.NullTime    `db:"updated_at"`
}
