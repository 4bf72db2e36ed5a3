package services

import (
	"context"

	"github.com/navabank/account_service/internal/core/domain"
	"github.com/navabank/account_service/internal/dto"
)

// AccountSvcFacade is the application-service port the HTTP handlers
// depend on. Every mutation sequences load -> one aggregate operation ->
// transactional persist; domain failures are returned without persisting.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	Deposit(ctx context.Context, accountID string, req dto.DepositRequest) error
	Withdraw(ctx context.Context, accountID string, req dto.WithdrawRequest) error
	CloseAccount(ctx context.Context, accountID string) error
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error)
}
