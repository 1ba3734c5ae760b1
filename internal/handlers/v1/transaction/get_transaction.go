package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// GetTransactionInput is the Huma input for retrieving a transaction.
type GetTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction id"`
}

// GetTransactionResponse is the response body for retrieving a transaction.
type GetTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

// GetTransactionOutput is the response for retrieving a transaction.
type GetTransactionOutput struct {
	Body GetTransactionResponse
}

// transactionReader is the interface for retrieving a single transaction.
type transactionReader interface {
	GetTransaction(ctx context.Context, userID, id int64) (*sqlconfig.Transaction, error)
}

// GetTransactionHandler handles GET /api/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionReader
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionReader) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/api/transactions/{id}",
		Summary:     "Get a transaction",
		Description: "Retrieves one of the caller's transactions.",
		Tags:        []string{"Transactions"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	transaction, err := h.TransactionService.GetTransaction(ctx, userID, input.ID)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetTransactionOutput{Body: GetTransactionResponse{Transaction: serializeTransaction(transaction)}}, nil
}
