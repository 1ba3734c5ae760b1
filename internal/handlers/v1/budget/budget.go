// Package budget exposes the budget endpoints. Every budget is returned with
// its derived spending figures so clients never compute progress themselves.
package budget

import (
	"time"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const dateLayout = "2006-01-02"

// Budget is the serialized form of a budget with spending figures.
type Budget struct {
	ID            int64   `json:"id" doc:"Budget id"`
	CategoryID    int64   `json:"category_id" doc:"Expense category the budget covers"`
	CategoryName  *string `json:"category_name" doc:"Category name, null if the category is gone"`
	CategoryColor string  `json:"category_color" doc:"Category hex color"`
	Amount        float64 `json:"amount" doc:"Budgeted ceiling"`
	StartDate     string  `json:"start_date" doc:"Inclusive range start, YYYY-MM-DD"`
	EndDate       string  `json:"end_date" doc:"Inclusive range end, YYYY-MM-DD"`
	Spent         float64 `json:"spent" doc:"Expenses accumulated inside the range"`
	Remaining     float64 `json:"remaining" doc:"Amount minus spent, may be negative"`
	Percent       float64 `json:"percent" doc:"Spent as a percentage of amount"`
}

func serializeBudget(status *service.BudgetStatus) Budget {
	color := sqlconfig.UncategorizedCategoryColor
	if status.CategoryColor != nil {
		color = *status.CategoryColor
	}
	return Budget{
		ID:            status.ID,
		CategoryID:    status.CategoryID,
		CategoryName:  status.CategoryName,
		CategoryColor: color,
		Amount:        status.Amount.InexactFloat64(),
		StartDate:     status.StartDate.Format(dateLayout),
		EndDate:       status.EndDate.Format(dateLayout),
		Spent:         status.Spent.InexactFloat64(),
		Remaining:     status.Remaining.InexactFloat64(),
		Percent:       status.Percent,
	}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, httperr.New(400, "Invalid date format. Use YYYY-MM-DD")
	}
	return date, nil
}
