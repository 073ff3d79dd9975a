package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind int

const (
	TxInquiry  TransactionKind = 1
	TxDeposit  TransactionKind = 2
	TxWithdraw TransactionKind = 3
)

func (k TransactionKind) String() string {
	switch k {
	case TxInquiry:
		return "INQUIRY"
	case TxDeposit:
		return "DEPOSIT"
	case TxWithdraw:
		return "WITHDRAW"
	}
	return "UNKNOWN"
}

// Transaction is one session-log entry. The log lives in memory for the
// lifetime of the process only; no table backs it.
type Transaction struct {
	ID           uuid.UUID
	Kind         TransactionKind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	At           time.Time
}
