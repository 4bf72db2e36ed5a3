package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/navabank/account_service/internal/apperrors"
	"github.com/navabank/account_service/internal/core/domain"
	"github.com/navabank/account_service/internal/core/ports"
	portsrepo "github.com/navabank/account_service/internal/core/ports/repositories"
	portssvc "github.com/navabank/account_service/internal/core/ports/services"
	"github.com/navabank/account_service/internal/dto"
	"github.com/navabank/account_service/internal/middleware"
)

// AccountService orchestrates the account use cases: load the aggregate,
// invoke exactly one domain operation, persist transactionally. Domain
// failures abort before any persistence call.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
	clock       ports.Clock
}

// NewAccountService creates the account application service.
func NewAccountService(repo portsrepo.AccountRepository, clock ports.Clock) *AccountService {
	return &AccountService{accountRepo: repo, clock: clock}
}

// Ensure AccountService implements the facade the handlers depend on.
var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// CreateAccount opens a new active account with the requested initial
// balance and returns the created aggregate.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}

	initialBalance, err := domain.NewMoney(req.InitialBalance, currencyOrDefault(req.Currency))
	if err != nil {
		return nil, err
	}

	account, err := domain.NewAccount(req.CustomerID, initialBalance, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.ID()))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.ID()), slog.String("customer_id", account.CustomerID()))
	return account, nil
}

// Deposit adds money to an active account and records the ledger entry.
func (s *AccountService) Deposit(ctx context.Context, accountID string, req dto.DepositRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: deposit amount must be greater than zero", apperrors.ErrValidation)
	}

	amount, err := domain.NewMoney(req.Amount, currencyOrDefault(req.Currency))
	if err != nil {
		return err
	}

	return s.mutateAccount(ctx, accountID, func(account *domain.Account) error {
		if err := account.Deposit(amount, s.clock.Now()); err != nil {
			return err
		}
		logger.Info("Deposit applied", slog.String("account_id", accountID), slog.String("amount", amount.String()))
		return nil
	})
}

// Withdraw removes money from an active account and records the ledger entry.
func (s *AccountService) Withdraw(ctx context.Context, accountID string, req dto.WithdrawRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: withdraw amount must be greater than zero", apperrors.ErrValidation)
	}

	amount, err := domain.NewMoney(req.Amount, currencyOrDefault(req.Currency))
	if err != nil {
		return err
	}

	return s.mutateAccount(ctx, accountID, func(account *domain.Account) error {
		if err := account.Withdraw(amount, s.clock.Now()); err != nil {
			return err
		}
		logger.Info("Withdrawal applied", slog.String("account_id", accountID), slog.String("amount", amount.String()))
		return nil
	})
}

// CloseAccount transitions an account to CLOSED.
func (s *AccountService) CloseAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	return s.mutateAccount(ctx, accountID, func(account *domain.Account) error {
		if err := account.Close(); err != nil {
			return err
		}
		logger.Info("Account closed", slog.String("account_id", accountID))
		return nil
	})
}

// GetAccountByID retrieves the full aggregate including its ledger.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// Not-found is an expected outcome; only log unexpected failures.
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccountsByCustomerID returns the customer's accounts without ledger
// detail. An empty list is a valid success.
func (s *AccountService) ListAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.FindAccountsByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list accounts for customer %s: %w", customerID, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// mutateAccount runs the load -> mutate -> persist sequence shared by
// every command. The mutation's new ledger entries are handed to the
// repository so balance and ledger become durable in one transaction.
func (s *AccountService) mutateAccount(ctx context.Context, accountID string, mutate func(*domain.Account) error) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load account for mutation", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	ledgerLen := len(account.Transactions())
	if err := mutate(account); err != nil {
		return err
	}
	newTxns := account.Transactions()[ledgerLen:]

	if err := s.accountRepo.UpdateAccount(ctx, *account, newTxns); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Concurrent modification detected", slog.String("account_id", accountID))
		} else {
			logger.Error("Failed to persist mutated account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}
	return nil
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return domain.DefaultCurrency
	}
	return currency
}
