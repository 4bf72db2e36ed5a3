package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/navabank/account_service/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open a new account.
// A blank currency falls back to the service default (IRR).
type CreateAccountRequest struct {
	CustomerID     string          `json:"customerID" binding:"required,uuid"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Currency       string          `json:"currency" binding:"omitempty,currency"`
}

// DepositRequest defines the data needed to deposit into an account.
type DepositRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"omitempty,currency"`
}

// WithdrawRequest defines the data needed to withdraw from an account.
type WithdrawRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"omitempty,currency"`
}

// CreateAccountResponse carries the id assigned to a newly opened account.
type CreateAccountResponse struct {
	AccountID string `json:"accountID"`
}

// TransactionResponse is a single ledger entry in an account projection.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AccountResponse is the full account projection including the ordered
// transaction ledger.
type AccountResponse struct {
	ID           string                `json:"id"`
	CustomerID   string                `json:"customerID"`
	Balance      decimal.Decimal       `json:"balance"`
	Currency     string                `json:"currency"`
	Status       string                `json:"status"`
	CreatedAt    time.Time             `json:"createdAt"`
	Transactions []TransactionResponse `json:"transactions"`
}

// AccountSummaryResponse is the lightweight projection used when listing a
// customer's accounts; it carries no transaction detail.
type AccountSummaryResponse struct {
	ID        string          `json:"id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ListAccountsResponse wraps the summaries for a customer.
type ListAccountsResponse struct {
	Accounts []AccountSummaryResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to the full projection.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	txns := acc.Transactions()
	txnResponses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		txnResponses[i] = TransactionResponse{
			ID:        txn.ID,
			Amount:    txn.Amount.Amount(),
			Currency:  txn.Amount.Currency(),
			Type:      string(txn.Type),
			CreatedAt: txn.CreatedAt,
		}
	}
	return AccountResponse{
		ID:           acc.ID(),
		CustomerID:   acc.CustomerID(),
		Balance:      acc.Balance().Amount(),
		Currency:     acc.Balance().Currency(),
		Status:       string(acc.Status()),
		CreatedAt:    acc.CreatedAt(),
		Transactions: txnResponses,
	}
}

// ToAccountSummaryResponse converts a domain.Account to the summary projection.
func ToAccountSummaryResponse(acc *domain.Account) AccountSummaryResponse {
	return AccountSummaryResponse{
		ID:        acc.ID(),
		Balance:   acc.Balance().Amount(),
		Currency:  acc.Balance().Currency(),
		Status:    string(acc.Status()),
		CreatedAt: acc.CreatedAt(),
	}
}

// ToListAccountsResponse converts a slice of domain accounts to summaries.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	summaries := make([]AccountSummaryResponse, len(accounts))
	for i := range accounts {
		summaries[i] = ToAccountSummaryResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: summaries}
}
