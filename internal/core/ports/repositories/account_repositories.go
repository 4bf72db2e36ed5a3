package repositories

import (
	"context"

	"github.com/navabank/account_service/internal/core/domain"
)

// AccountRepository is the persistence port for the Account aggregate.
// Implementations own the transactional boundary: UpdateAccount must make
// the balance/status change and the new ledger entries durable together,
// or not at all.
type AccountRepository interface {
	// SaveAccount inserts a newly created account (its ledger is empty).
	// Returns apperrors.ErrDuplicate when the account id already exists.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID loads the full aggregate including its ledger in
	// insertion order. Returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByCustomerID returns the customer's accounts without
	// ledger detail. An empty result is not an error.
	FindAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error)

	// UpdateAccount persists the mutated aggregate and appends newTxns to
	// the ledger within a single transaction. Returns apperrors.ErrNotFound
	// when the account no longer exists.
	UpdateAccount(ctx context.Context, account domain.Account, newTxns []domain.Transaction) error
}
