package transaction

import (
	"net/http"
	"time"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID            int64   `json:"id" doc:"Transaction id"`
	AccountID     int64   `json:"account_id" doc:"Owning account id"`
	CategoryID    *int64  `json:"category_id" doc:"Category id, null when uncategorized"`
	CategoryName  *string `json:"category_name" doc:"Joined category name, null when uncategorized"`
	CategoryColor string  `json:"category_color" doc:"Joined category color, gray when uncategorized"`
	Amount        float64 `json:"amount" doc:"Positive decimal amount"`
	Description   string  `json:"description" doc:"Free text description"`
	Type          string  `json:"type" doc:"income, expense or transfer"`
	Date          string  `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	CreatedAt     string  `json:"created_at" doc:"Creation timestamp"`
}

func serializeTransaction(transaction *sqlconfig.Transaction) Transaction {
	color := sqlconfig.UncategorizedCategoryColor
	if transaction.CategoryColor != nil {
		color = *transaction.CategoryColor
	}
	return Transaction{
		ID:            transaction.ID,
		AccountID:     transaction.AccountID,
		CategoryID:    transaction.CategoryID,
		CategoryName:  transaction.CategoryName,
		CategoryColor: color,
		Amount:        transaction.Amount.InexactFloat64(),
		Description:   transaction.Description,
		Type:          transaction.Type,
		Date:          transaction.Date.Format(dateLayout),
		CreatedAt:     transaction.CreatedAt.Format(timestampLayout),
	}
}

// parseDate turns a YYYY-MM-DD string into a day-precision time. The field
// name only shapes the error message.
func parseDate(value, field string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		if field == "" {
			return time.Time{}, httperr.New(http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		}
		return time.Time{}, httperr.New(http.StatusBadRequest, "Invalid "+field+" format. Use YYYY-MM-DD")
	}
	return parsed, nil
}
