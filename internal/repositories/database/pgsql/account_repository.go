package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/navabank/account_service/internal/apperrors"
	"github.com/navabank/account_service/internal/core/domain"
	portsrepo "github.com/navabank/account_service/internal/core/ports/repositories"
	"github.com/navabank/account_service/internal/models"
	"github.com/navabank/account_service/internal/utils/mapping"
)

// PgxAccountRepository persists the Account aggregate in PostgreSQL.
// UpdateAccount is the unit of work: the balance/status update and the new
// ledger rows commit together or not at all.
type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// SaveAccount inserts a newly created account. The ledger is empty at
// creation so only the accounts row is written.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, customer_id, balance, currency_code, status, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.CustomerID,
		modelAcc.Balance,
		modelAcc.CurrencyCode,
		modelAcc.Status,
		modelAcc.Version,
		modelAcc.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID loads the aggregate with its ledger in insertion order.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, customer_id, balance, currency_code, status, version, created_at
		FROM accounts
		WHERE account_id = $1;
	`
	var modelAcc models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.CustomerID,
		&modelAcc.Balance,
		&modelAcc.CurrencyCode,
		&modelAcc.Status,
		&modelAcc.Version,
		&modelAcc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	txns, err := r.findTransactionsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return mapping.ToDomainAccount(modelAcc, txns)
}

// FindAccountsByCustomerID returns the customer's accounts without ledger
// detail. An empty result is a valid success.
func (r *PgxAccountRepository) FindAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, customer_id, balance, currency_code, status, version, created_at
		FROM accounts
		WHERE customer_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var modelAcc models.Account
		err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.CustomerID,
			&modelAcc.Balance,
			&modelAcc.CurrencyCode,
			&modelAcc.Status,
			&modelAcc.Version,
			&modelAcc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for customer %s: %w", customerID, err)
		}
		domainAcc, err := mapping.ToDomainAccount(modelAcc, nil)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *domainAcc)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows for customer %s: %w", customerID, rows.Err())
	}

	return accounts, nil
}

// UpdateAccount persists the mutated aggregate and its new ledger entries
// inside one database transaction. The UPDATE is conditional on the version
// the aggregate was loaded with, so a writer working from a stale read
// fails with ErrConflict instead of overwriting a concurrent commit; the
// caller may reload and retry.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account, newTxns []domain.Transaction) error {
	modelAcc := mapping.ToModelAccount(account)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once the transaction is committed.

	updateQuery := `
		UPDATE accounts
		SET balance = $2, status = $3, version = version + 1
		WHERE account_id = $1 AND version = $4;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery, modelAcc.AccountID, modelAcc.Balance, modelAcc.Status, modelAcc.Version)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", modelAcc.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Zero rows means either the account is gone or another writer
		// bumped the version since our load.
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_id = $1);`, modelAcc.AccountID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check account %s after conflicting update: %w", modelAcc.AccountID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: account %s", apperrors.ErrConflict, modelAcc.AccountID)
	}

	if len(newTxns) > 0 {
		insertQuery := `
			INSERT INTO transactions (transaction_id, account_id, amount, currency_code, transaction_type, created_at)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		batch := &pgx.Batch{}
		for _, txn := range newTxns {
			modelTxn := mapping.ToModelTransaction(txn)
			batch.Queue(insertQuery,
				modelTxn.TransactionID,
				modelTxn.AccountID,
				modelTxn.Amount,
				modelTxn.CurrencyCode,
				modelTxn.TransactionType,
				modelTxn.CreatedAt,
			)
		}

		br := tx.SendBatch(ctx, batch)
		var batchErr error
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil && batchErr == nil {
				batchErr = fmt.Errorf("failed to insert transaction %s: %w", newTxns[i].ID, err)
			}
		}
		if err := br.Close(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to close transaction insert batch: %w", err)
		}
		if batchErr != nil {
			return batchErr
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxAccountRepository) findTransactionsByAccountID(ctx context.Context, accountID string) ([]models.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, amount, currency_code, transaction_type, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY seq;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.AccountID,
			&modelTxn.Amount,
			&modelTxn.CurrencyCode,
			&modelTxn.TransactionType,
			&modelTxn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for account %s: %w", accountID, err)
		}
		txns = append(txns, modelTxn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows for account %s: %w", accountID, rows.Err())
	}

	return txns, nil
}
