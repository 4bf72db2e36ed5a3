package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountStatus is the account lifecycle state. ACTIVE is the initial
// state; CLOSED is terminal, there is no transition out of it.
type AccountStatus string

const (
	StatusActive AccountStatus = "ACTIVE"
	StatusClosed AccountStatus = "CLOSED"
)

// Account is the aggregate root for a bank account. It owns its balance,
// status and transaction ledger, and exposes the only legal mutations.
// Invariants held at all times: the balance is never negative, the balance
// currency is fixed at creation, the ledger is append-only, and a balance
// change and its ledger entry happen together or not at all.
//
// The aggregate never performs I/O; persistence is sequenced by the
// service layer around it.
type Account struct {
	id           string
	customerID   string
	balance      Money
	status       AccountStatus
	version      int64
	createdAt    time.Time
	transactions []Transaction
}

// NewAccount creates an active account with the given initial balance and
// an empty ledger. The customer id must be non-blank.
func NewAccount(customerID string, initialBalance Money, now time.Time) (*Account, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrInvalidCustomerID
	}
	return &Account{
		id:         uuid.NewString(),
		customerID: customerID,
		balance:    initialBalance,
		status:     StatusActive,
		version:    1,
		createdAt:  now,
	}, nil
}

// RehydrateAccount rebuilds an aggregate from persisted state. It is meant
// for the persistence mapping layer only and performs no rule checks;
// business code must go through NewAccount.
func RehydrateAccount(id, customerID string, balance Money, status AccountStatus, version int64, createdAt time.Time, transactions []Transaction) *Account {
	return &Account{
		id:           id,
		customerID:   customerID,
		balance:      balance,
		status:       status,
		version:      version,
		createdAt:    createdAt,
		transactions: transactions,
	}
}

func (a *Account) ID() string            { return a.id }
func (a *Account) CustomerID() string    { return a.customerID }
func (a *Account) Balance() Money        { return a.balance }
func (a *Account) Status() AccountStatus { return a.status }
func (a *Account) CreatedAt() time.Time  { return a.createdAt }

// Version is the optimistic concurrency token. It counts committed writes
// of this aggregate; the repository rejects a persist whose loaded version
// is no longer current.
func (a *Account) Version() int64 { return a.version }

// Transactions returns the ledger in insertion order. The slice is a copy;
// the ledger itself can only grow through Deposit and Withdraw.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit adds amount to the balance and appends a Deposit ledger entry.
// Check order: account active, amount positive, then the Money arithmetic
// (which rejects a currency mismatch). A failure at any step leaves both
// balance and ledger untouched.
func (a *Account) Deposit(amount Money, now time.Time) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrInvalidDepositAmount
	}
	newBalance, err := a.balance.Add(amount)
	if err != nil {
		return err
	}
	a.balance = newBalance
	a.transactions = append(a.transactions, newTransaction(a.id, amount, Deposit, now))
	return nil
}

// Withdraw removes amount from the balance and appends a Withdrawal ledger
// entry. Check order: account active, amount positive, sufficient balance,
// then the Money arithmetic. The constructor-level non-negativity check in
// Money backs up the explicit sufficiency check here.
func (a *Account) Withdraw(amount Money, now time.Time) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrInvalidWithdrawAmount
	}
	if a.balance.Amount().LessThan(amount.Amount()) {
		return ErrInsufficientBalance
	}
	newBalance, err := a.balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.balance = newBalance
	a.transactions = append(a.transactions, newTransaction(a.id, amount, Withdrawal, now))
	return nil
}

// Close transitions the account to CLOSED. Closing an already closed
// account fails and changes nothing.
func (a *Account) Close() error {
	if a.status == StatusClosed {
		return ErrAccountAlreadyClosed
	}
	a.status = StatusClosed
	return nil
}

func (a *Account) ensureActive() error {
	if a.status != StatusActive {
		return ErrAccountNotActive
	}
	return nil
}
