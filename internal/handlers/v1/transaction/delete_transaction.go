package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction id"`
}

// DeleteTransactionResponse is the response body for deleting a transaction.
type DeleteTransactionResponse struct {
	Message string `json:"message" doc:"Human readable confirmation"`
}

// DeleteTransactionOutput is the response for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponse
}

// transactionDeleter is the interface for deleting transactions.
type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, userID, id int64) error
}

// DeleteTransactionHandler handles DELETE /api/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/api/transactions/{id}",
		Summary:     "Delete a transaction",
		Description: "Removes a transaction and reverses its balance effect.",
		Tags:        []string{"Transactions"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.DeleteTransaction(ctx, userID, input.ID); err != nil {
		return nil, httperr.FromService(err)
	}
	return &DeleteTransactionOutput{Body: DeleteTransactionResponse{Message: "Transaction deleted successfully"}}, nil
}
