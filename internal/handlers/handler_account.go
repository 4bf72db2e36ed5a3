package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navabank/account_service/internal/apperrors"
	"github.com/navabank/account_service/internal/core/domain"
	portssvc "github.com/navabank/account_service/internal/core/ports/services"
	"github.com/navabank/account_service/internal/dto"
	"github.com/navabank/account_service/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/customer/:customerID", h.listAccountsByCustomer)
		accounts.POST("/:accountID/deposit", h.deposit)
		accounts.POST("/:accountID/withdraw", h.withdraw)
		accounts.POST("/:accountID/close", h.closeAccount)
	}
}

// createAccount godoc
// @Summary Open a new account
// @Description Opens a new bank account for a customer with an initial balance
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.APIResponse{data=dto.CreateAccountResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input format or validation error"
// @Failure 409 {object} dto.APIResponse "Account already exists"
// @Failure 422 {object} dto.APIResponse "Business rule violated"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	traceID := middleware.GetRequestIDFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.FailureResponse(dto.CodeValidation, err.Error(), traceID))
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	logger.Info("Account created", slog.String("account_id", account.ID()))
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.CreateAccountResponse{AccountID: account.ID()}, traceID))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves the full account projection including its transaction ledger
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse}
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	traceID := middleware.GetRequestIDFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToAccountResponse(account), traceID))
}

// listAccountsByCustomer godoc
// @Summary List a customer's accounts
// @Description Retrieves lightweight summaries of all accounts owned by a customer; an empty list is a valid result
// @Tags accounts
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListAccountsResponse}
// @Router /accounts/customer/{customerID} [get]
func (h *accountHandler) listAccountsByCustomer(c *gin.Context) {
	traceID := middleware.GetRequestIDFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	accounts, err := h.accountService.ListAccountsByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToListAccountsResponse(accounts), traceID))
}

// deposit godoc
// @Summary Deposit into an account
// @Description Deposits the given amount into an active account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   deposit body dto.DepositRequest true "Deposit details"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid input format or validation error"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Failure 409 {object} dto.APIResponse "Account was modified concurrently"
// @Failure 422 {object} dto.APIResponse "Business rule violated (e.g. account not active)"
// @Router /accounts/{accountID}/deposit [post]
func (h *accountHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	traceID := middleware.GetRequestIDFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.FailureResponse(dto.CodeValidation, err.Error(), traceID))
		return
	}

	if err := h.accountService.Deposit(c.Request.Context(), accountID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(nil, traceID))
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Withdraws the given amount from an active account with sufficient balance
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   withdraw body dto.WithdrawRequest true "Withdrawal details"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid input format or validation error"
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Failure 409 {object} dto.APIResponse "Account was modified concurrently"
// @Failure 422 {object} dto.APIResponse "Business rule violated (e.g. insufficient balance)"
// @Router /accounts/{accountID}/withdraw [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	traceID := middleware.GetRequestIDFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.FailureResponse(dto.CodeValidation, err.Error(), traceID))
		return
	}

	if err := h.accountService.Withdraw(c.Request.Context(), accountID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(nil, traceID))
}

// closeAccount godoc
// @Summary Close an account
// @Description Closes an active account; a closed account accepts no further operations
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Failure 409 {object} dto.APIResponse "Account was modified concurrently"
// @Failure 422 {object} dto.APIResponse "Account already closed"
// @Router /accounts/{accountID}/close [post]
func (h *accountHandler) closeAccount(c *gin.Context) {
	traceID := middleware.GetRequestIDFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	if err := h.accountService.CloseAccount(c.Request.Context(), accountID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(nil, traceID))
}

// respondError maps service failures onto the response envelope. Expected
// failures keep their message; anything unclassified is logged in full and
// surfaced as an opaque internal error.
func (h *accountHandler) respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	traceID := middleware.GetRequestIDFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.FailureResponse(dto.CodeValidation, err.Error(), traceID))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Account not found")
		c.JSON(http.StatusNotFound, dto.FailureResponse(dto.CodeAccountNotFound, "Account not found", traceID))
	case errors.Is(err, domain.ErrDomain):
		logger.Warn("Domain rule violated", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, dto.FailureResponse(dto.CodeDomain, err.Error(), traceID))
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate account", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.FailureResponse(dto.CodeConflict, err.Error(), traceID))
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Concurrent modification", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.FailureResponse(dto.CodeConflict, err.Error(), traceID))
	default:
		logger.Error("Unexpected failure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.FailureResponse(dto.CodeInternal, "An unexpected error occurred", traceID))
	}
}
