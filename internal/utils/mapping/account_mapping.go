package mapping

import (
	"fmt"

	"github.com/navabank/account_service/internal/core/domain"
	"github.com/navabank/account_service/internal/models"
)

// ToModelAccount converts a domain Account to its persistence model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.ID(),
		CustomerID:   d.CustomerID(),
		Balance:      d.Balance().Amount(),
		CurrencyCode: d.Balance().Currency(),
		Status:       models.AccountStatus(d.Status()),
		Version:      d.Version(),
		CreatedAt:    d.CreatedAt(),
	}
}

// ToModelTransaction converts a domain ledger entry to its persistence model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.ID,
		AccountID:       d.AccountID,
		Amount:          d.Amount.Amount(),
		CurrencyCode:    d.Amount.Currency(),
		TransactionType: models.TransactionType(d.Type),
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainAccount hydrates the aggregate from persisted rows via the
// domain's rehydration factory; it is the only construction path that
// bypasses NewAccount, and it is reserved for the persistence layer.
func ToDomainAccount(m models.Account, txns []models.Transaction) (*domain.Account, error) {
	balance, err := domain.NewMoney(m.Balance, m.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("corrupt balance for account %s: %w", m.AccountID, err)
	}

	domainTxns := make([]domain.Transaction, len(txns))
	for i, t := range txns {
		amount, err := domain.NewMoney(t.Amount, t.CurrencyCode)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for transaction %s: %w", t.TransactionID, err)
		}
		domainTxns[i] = domain.Transaction{
			ID:        t.TransactionID,
			AccountID: t.AccountID,
			Amount:    amount,
			Type:      domain.TransactionType(t.TransactionType),
			CreatedAt: t.CreatedAt,
		}
	}

	return domain.RehydrateAccount(
		m.AccountID,
		m.CustomerID,
		balance,
		domain.AccountStatus(m.Status),
		m.Version,
		m.CreatedAt,
		domainTxns,
	), nil
}
