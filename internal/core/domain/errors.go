package domain

import (
	"errors"
	"fmt"
)

// ErrDomain is the base error every business-rule violation wraps.
// Boundaries classify with errors.Is(err, domain.ErrDomain) and map the
// whole family to a single unprocessable-request outcome.
var ErrDomain = errors.New("domain rule violated")

var (
	ErrInvalidMoneyAmount    = fmt.Errorf("%w: money amount cannot be negative", ErrDomain)
	ErrInvalidCurrency       = fmt.Errorf("%w: currency cannot be empty", ErrDomain)
	ErrCurrencyMismatch      = fmt.Errorf("%w: currency mismatch", ErrDomain)
	ErrInvalidCustomerID     = fmt.Errorf("%w: customer id cannot be empty", ErrDomain)
	ErrAccountNotActive      = fmt.Errorf("%w: account is not active", ErrDomain)
	ErrInvalidDepositAmount  = fmt.Errorf("%w: deposit amount must be positive", ErrDomain)
	ErrInvalidWithdrawAmount = fmt.Errorf("%w: withdraw amount must be positive", ErrDomain)
	ErrInsufficientBalance   = fmt.Errorf("%w: insufficient balance", ErrDomain)
	ErrAccountAlreadyClosed  = fmt.Errorf("%w: account is already closed", ErrDomain)
)
