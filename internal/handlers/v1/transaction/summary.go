package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/service"
)

// SummaryInput is the Huma input for the summary report.
type SummaryInput struct {
	StartDate string `query:"start_date" doc:"Inclusive lower date bound, YYYY-MM-DD"`
	EndDate   string `query:"end_date" doc:"Inclusive upper date bound, YYYY-MM-DD"`
}

// CategoryAmount is one category bucket of the summary.
type CategoryAmount struct {
	ID     int64   `json:"id" doc:"Category id, 0 for uncategorized"`
	Name   string  `json:"name" doc:"Category name"`
	Color  string  `json:"color" doc:"Category color"`
	Amount float64 `json:"amount" doc:"Accumulated amount"`
}

// Summary is the income/expense breakdown.
type Summary struct {
	TotalIncome       float64          `json:"total_income" doc:"Sum of income amounts"`
	TotalExpense      float64          `json:"total_expense" doc:"Sum of expense amounts"`
	Balance           float64          `json:"balance" doc:"Income minus expenses"`
	IncomeCategories  []CategoryAmount `json:"income_categories"`
	ExpenseCategories []CategoryAmount `json:"expense_categories"`
}

// SummaryResponse is the response body for the summary report.
type SummaryResponse struct {
	Summary Summary `json:"summary"`
}

// SummaryOutput is the response for the summary report.
type SummaryOutput struct {
	Body SummaryResponse
}

// summarizer is the interface for building the summary report.
type summarizer interface {
	Summarize(ctx context.Context, userID int64, start, end *time.Time) (*service.Summary, error)
}

// SummaryHandler handles GET /api/transactions/summary.
type SummaryHandler struct {
	TransactionService summarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-summary",
		Method:      http.MethodGet,
		Path:        "/api/transactions/summary",
		Summary:     "Summarize transactions",
		Description: "Sums income and expenses by category over an optional date range. Transfers are excluded.",
		Tags:        []string{"Transactions"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func serializeBuckets(buckets []service.CategoryAmount) []CategoryAmount {
	serialized := make([]CategoryAmount, len(buckets))
	for i, bucket := range buckets {
		serialized[i] = CategoryAmount{
			ID:     bucket.ID,
			Name:   bucket.Name,
			Color:  bucket.Color,
			Amount: bucket.Amount.InexactFloat64(),
		}
	}
	return serialized
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	var start, end *time.Time
	if input.StartDate != "" {
		parsed, err := parseDate(input.StartDate, "start_date")
		if err != nil {
			return nil, err
		}
		start = &parsed
	}
	if input.EndDate != "" {
		parsed, err := parseDate(input.EndDate, "end_date")
		if err != nil {
			return nil, err
		}
		end = &parsed
	}

	summary, err := h.TransactionService.Summarize(ctx, userID, start, end)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &SummaryOutput{
		Body: SummaryResponse{
			Summary: Summary{
				TotalIncome:       summary.TotalIncome.InexactFloat64(),
				TotalExpense:      summary.TotalExpense.InexactFloat64(),
				Balance:           summary.Balance.InexactFloat64(),
				IncomeCategories:  serializeBuckets(summary.IncomeCategories),
				ExpenseCategories: serializeBuckets(summary.ExpenseCategories),
			},
		},
	}, nil
}
