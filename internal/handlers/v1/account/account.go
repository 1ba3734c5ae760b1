package account

import (
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const timestampLayout = "2006-01-02 15:04:05"

// Account is the API response model for an account.
type Account struct {
	ID        int64   `json:"id" doc:"Account id"`
	Name      string  `json:"name" doc:"Account name"`
	Balance   float64 `json:"balance" doc:"Cached running balance"`
	Currency  string  `json:"currency" doc:"ISO currency code"`
	IsActive  bool    `json:"is_active" doc:"Whether the account is active"`
	CreatedAt string  `json:"created_at" doc:"Creation timestamp"`
}

func serializeAccount(account *sqlconfig.Account) Account {
	return Account{
		ID:        account.ID,
		Name:      account.Name,
		Balance:   account.Balance.InexactFloat64(),
		Currency:  account.Currency,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt.Format(timestampLayout),
	}
}
