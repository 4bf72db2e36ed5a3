package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType indicates whether a ledger entry added money to or
// removed money from an account.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
)

// Transaction is an immutable ledger entry recording a single
// balance-affecting event. Entries are created only by the Account
// aggregate, exactly once per successful deposit or withdrawal, and are
// never updated or deleted.
type Transaction struct {
	ID        string
	AccountID string
	Amount    Money
	Type      TransactionType
	CreatedAt time.Time
}

func newTransaction(accountID string, amount Money, txnType TransactionType, now time.Time) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Amount:    amount,
		Type:      txnType,
		CreatedAt: now,
	}
}
