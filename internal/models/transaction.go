package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the domain ledger entry type as stored in the DB.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
)

// Transaction is the persistence model for the transactions table.
// Rows are append-only; there is no update or delete path.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"`
	CurrencyCode    string          `db:"currency_code"`
	TransactionType TransactionType `db:"transaction_type"`
	CreatedAt       time.Time       `db:"created_at"`
}
