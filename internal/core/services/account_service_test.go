package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/navabank/account_service/internal/apperrors"
	"github.com/navabank/account_service/internal/core/domain"
	"github.com/navabank/account_service/internal/core/services"
	"github.com/navabank/account_service/internal/dto"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account, newTxns []domain.Transaction) error {
	args := m.Called(ctx, account, newTxns)
	return args.Error(0)
}

// fixedClock pins time so persisted timestamps are assertable.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  *services.AccountService
	now      time.Time
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewAccountService(suite.mockRepo, fixedClock{now: suite.now})
}

func (suite *AccountServiceTestSuite) newActiveAccount(amount int64) *domain.Account {
	balance, err := domain.NewMoney(decimal.NewFromInt(amount), "IRR")
	suite.Require().NoError(err)
	account, err := domain.NewAccount(uuid.NewString(), balance, suite.now)
	suite.Require().NoError(err)
	return account
}

// --- CreateAccount ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		CustomerID:     uuid.NewString(),
		InitialBalance: decimal.NewFromInt(1_000_000),
		Currency:       "IRR",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.ID())
	suite.Equal(req.CustomerID, account.CustomerID())
	suite.Equal(domain.StatusActive, account.Status())
	suite.True(account.Balance().Amount().Equal(req.InitialBalance))
	suite.Equal("IRR", account.Balance().Currency())
	suite.Equal(suite.now, account.CreatedAt())
	suite.Empty(account.Transactions())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultsCurrency() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		CustomerID:     uuid.NewString(),
		InitialBalance: decimal.Zero,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultCurrency, account.Balance().Currency())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeInitialBalance() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		CustomerID:     uuid.NewString(),
		InitialBalance: decimal.NewFromInt(-1),
		Currency:       "IRR",
	}

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(account)
	// The repository must never be touched on a validation failure.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		CustomerID:     uuid.NewString(),
		InitialBalance: decimal.NewFromInt(100),
		Currency:       "IRR",
	}
	saveErr := errors.New("db connection failed")

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(saveErr).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, saveErr)
	suite.Nil(account)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Deposit ---

func (suite *AccountServiceTestSuite) TestDeposit_Success() {
	ctx := context.Background()
	account := suite.newActiveAccount(1_000_000)
	req := dto.DepositRequest{Amount: decimal.NewFromInt(500_000), Currency: "IRR"}

	suite.mockRepo.On("FindAccountByID", ctx, account.ID()).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account"), mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(domain.Account)
			suite.True(updated.Balance().Amount().Equal(decimal.NewFromInt(1_500_000)))
			newTxns := args.Get(2).([]domain.Transaction)
			suite.Require().Len(newTxns, 1)
			suite.Equal(domain.Deposit, newTxns[0].Type)
			suite.True(newTxns[0].Amount.Amount().Equal(req.Amount))
			suite.Equal(suite.now, newTxns[0].CreatedAt)
		}).
		Return(nil).Once()

	err := suite.service.Deposit(ctx, account.ID(), req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeposit_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.DepositRequest{Amount: decimal.Zero, Currency: "IRR"}

	err := suite.service.Deposit(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeposit_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.DepositRequest{Amount: decimal.NewFromInt(100), Currency: "IRR"}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.Deposit(ctx, accountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeposit_ClosedAccount() {
	ctx := context.Background()
	account := suite.newActiveAccount(1_000_000)
	suite.Require().NoError(account.Close())
	req := dto.DepositRequest{Amount: decimal.NewFromInt(100), Currency: "IRR"}

	suite.mockRepo.On("FindAccountByID", ctx, account.ID()).Return(account, nil).Once()

	err := suite.service.Deposit(ctx, account.ID(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrAccountNotActive)
	// Domain failure aborts before persistence.
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeposit_CurrencyMismatch() {
	ctx := context.Background()
	account := suite.newActiveAccount(1_000_000)
	req := dto.DepositRequest{Amount: decimal.NewFromInt(100), Currency: "USD"}

	suite.mockRepo.On("FindAccountByID", ctx, account.ID()).Return(account, nil).Once()

	err := suite.service.Deposit(ctx, account.ID(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrCurrencyMismatch)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything, mock.Anything)
}

// --- Withdraw ---

func (suite *AccountServiceTestSuite) TestWithdraw_Success() {
	ctx := context.Background()
	account := suite.newActiveAccount(1_000_000)
	req := dto.WithdrawRequest{Amount: decimal.NewFromInt(300_000), Currency: "IRR"}

	suite.mockRepo.On("FindAccountByID", ctx, account.ID()).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account"), mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(domain.Account)
			suite.True(updated.Balance().Amount().Equal(decimal.NewFromInt(700_000)))
			newTxns := args.Get(2).([]domain.Transaction)
			suite.Require().Len(newTxns, 1)
			suite.Equal(domain.Withdrawal, newTxns[0].Type)
		}).
		Return(nil).Once()

	err := suite.service.Withdraw(ctx, account.ID(), req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestWithdraw_InsufficientBalance() {
	ctx := context.Background()
	account := suite.newActiveAccount(1_000_000)
	req := dto.WithdrawRequest{Amount: decimal.NewFromInt(5_000_000), Currency: "IRR"}

	suite.mockRepo.On("FindAccountByID", ctx, account.ID()).Return(account, nil).Once()

	err := suite.service.Withdraw(ctx, account.ID(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrInsufficientBalance)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestWithdraw_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.WithdrawRequest{Amount: decimal.NewFromInt(-5), Currency: "IRR"}

	err := suite.service.Withdraw(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeposit_ConflictPassthrough() {
	ctx := context.Background()
	account := suite.newActiveAccount(1_000_000)
	req := dto.DepositRequest{Amount: decimal.NewFromInt(100), Currency: "IRR"}

	suite.mockRepo.On("FindAccountByID", ctx, account.ID()).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account"), mock.AnythingOfType("[]domain.Transaction")).
		Return(fmt.Errorf("%w: account %s", apperrors.ErrConflict, account.ID())).Once()

	err := suite.service.Deposit(ctx, account.ID(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestWithdraw_UpdateError() {
	ctx := context.Background()
	account := suite.newActiveAccount(1_000_000)
	req := dto.WithdrawRequest{Amount: decimal.NewFromInt(100), Currency: "IRR"}
	updateErr := errors.New("tx commit failed")

	suite.mockRepo.On("FindAccountByID", ctx, account.ID()).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account"), mock.AnythingOfType("[]domain.Transaction")).Return(updateErr).Once()

	err := suite.service.Withdraw(ctx, account.ID(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, updateErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- CloseAccount ---

func (suite *AccountServiceTestSuite) TestCloseAccount_Success() {
	ctx := context.Background()
	account := suite.newActiveAccount(0)

	suite.mockRepo.On("FindAccountByID", ctx, account.ID()).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account"), mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(domain.Account)
			suite.Equal(domain.StatusClosed, updated.Status())
			suite.Empty(args.Get(2).([]domain.Transaction))
		}).
		Return(nil).Once()

	err := suite.service.CloseAccount(ctx, account.ID())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCloseAccount_AlreadyClosed() {
	ctx := context.Background()
	account := suite.newActiveAccount(0)
	suite.Require().NoError(account.Close())

	suite.mockRepo.On("FindAccountByID", ctx, account.ID()).Return(account, nil).Once()

	err := suite.service.CloseAccount(ctx, account.ID())

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrAccountAlreadyClosed)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCloseAccount_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.CloseAccount(ctx, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GetAccountByID ---

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	account := suite.newActiveAccount(1_000_000)

	suite.mockRepo.On("FindAccountByID", ctx, account.ID()).Return(account, nil).Once()

	found, err := suite.service.GetAccountByID(ctx, account.ID())

	suite.Require().NoError(err)
	suite.Equal(account.ID(), found.ID())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	found, err := suite.service.GetAccountByID(ctx, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(found)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- ListAccountsByCustomerID ---

func (suite *AccountServiceTestSuite) TestListAccountsByCustomerID_Success() {
	ctx := context.Background()
	customerID := uuid.NewString()
	accounts := []domain.Account{*suite.newActiveAccount(100), *suite.newActiveAccount(200)}

	suite.mockRepo.On("FindAccountsByCustomerID", ctx, customerID).Return(accounts, nil).Once()

	found, err := suite.service.ListAccountsByCustomerID(ctx, customerID)

	suite.Require().NoError(err)
	suite.Len(found, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccountsByCustomerID_EmptyIsSuccess() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockRepo.On("FindAccountsByCustomerID", ctx, customerID).Return([]domain.Account(nil), nil).Once()

	found, err := suite.service.ListAccountsByCustomerID(ctx, customerID)

	suite.Require().NoError(err)
	suite.NotNil(found)
	suite.Empty(found)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccountsByCustomerID_RepoError() {
	ctx := context.Background()
	customerID := uuid.NewString()
	repoErr := errors.New("query failed")

	suite.mockRepo.On("FindAccountsByCustomerID", ctx, customerID).Return(nil, repoErr).Once()

	found, err := suite.service.ListAccountsByCustomerID(ctx, customerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.Nil(found)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
