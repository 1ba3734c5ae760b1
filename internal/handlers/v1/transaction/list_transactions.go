package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Type       string `query:"type" doc:"Restrict to one transaction type"`
	AccountID  *int64 `query:"account_id" doc:"Restrict to one account"`
	CategoryID *int64 `query:"category_id" doc:"Restrict to one category"`
	StartDate  string `query:"start_date" doc:"Inclusive lower date bound, YYYY-MM-DD"`
	EndDate    string `query:"end_date" doc:"Inclusive upper date bound, YYYY-MM-DD"`
}

// ListTransactionsResponse is the response body for listing transactions.
type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// ListTransactionsOutput is the response for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponse
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID int64, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error)
}

// ListTransactionsHandler handles GET /api/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions",
		Summary:     "List transactions",
		Description: "Lists the caller's transactions, newest first.",
		Tags:        []string{"Transactions"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	filter := &sqlconfig.TransactionFilter{
		Type:       input.Type,
		AccountID:  input.AccountID,
		CategoryID: input.CategoryID,
	}
	if input.StartDate != "" {
		start, err := parseDate(input.StartDate, "start_date")
		if err != nil {
			return nil, err
		}
		filter.StartDate = &start
	}
	if input.EndDate != "" {
		end, err := parseDate(input.EndDate, "end_date")
		if err != nil {
			return nil, err
		}
		filter.EndDate = &end
	}

	transactions, err := h.TransactionService.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	serialized := make([]Transaction, len(transactions))
	for i, transaction := range transactions {
		serialized[i] = serializeTransaction(transaction)
	}
	return &ListTransactionsOutput{Body: ListTransactionsResponse{Transactions: serialized}}, nil
}
