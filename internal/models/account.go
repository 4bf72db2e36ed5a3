package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus mirrors the domain lifecycle state as stored in the DB.
type AccountStatus string

const (
	Active AccountStatus = "ACTIVE"
	Closed AccountStatus = "CLOSED"
)

// Account is the persistence model for the accounts table.
type Account struct {
	AccountID    string          `db:"account_id"`
	CustomerID   string          `db:"customer_id"`
	Balance      decimal.Decimal `db:"balance"`
	CurrencyCode string          `db:"currency_code"`
	Status       AccountStatus   `db:"status"`
	Version      int64           `db:"version"`
	CreatedAt    time.Time       `db:"created_at"`
}
