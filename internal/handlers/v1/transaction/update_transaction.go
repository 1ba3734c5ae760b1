package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Absent fields are left untouched; category_id 0 detaches the category.
type UpdateTransactionBody struct {
	Amount      *float64 `json:"amount,omitempty" doc:"Positive decimal amount"`
	Type        *string  `json:"type,omitempty" doc:"income, expense or transfer"`
	Description *string  `json:"description,omitempty" doc:"Free text description"`
	Date        *string  `json:"date,omitempty" doc:"Transaction date, YYYY-MM-DD"`
	CategoryID  *int64   `json:"category_id,omitempty" doc:"Category id, 0 to detach"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   int64 `path:"id" doc:"Transaction id"`
	Body UpdateTransactionBody
}

// UpdateTransactionResponse is the response body for updating a transaction.
type UpdateTransactionResponse struct {
	Message     string      `json:"message" doc:"Human readable confirmation"`
	Transaction Transaction `json:"transaction"`
}

// UpdateTransactionOutput is the response for updating a transaction.
type UpdateTransactionOutput struct {
	Body UpdateTransactionResponse
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, userID, id int64, setter *sqlconfig.TransactionSetter) (*sqlconfig.Transaction, error)
}

// UpdateTransactionHandler handles PUT /api/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/api/transactions/{id}",
		Summary:     "Update a transaction",
		Description: "Applies a partial update, rebalancing the account so changes never double-count.",
		Tags:        []string{"Transactions"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	setter := &sqlconfig.TransactionSetter{}
	if input.Body.Amount != nil {
		setter.Amount = omit.From(decimal.NewFromFloat(*input.Body.Amount))
	}
	if input.Body.Type != nil {
		setter.Type = omit.From(*input.Body.Type)
	}
	if input.Body.Description != nil {
		setter.Description = omit.From(*input.Body.Description)
	}
	if input.Body.Date != nil {
		date, err := parseDate(*input.Body.Date, "")
		if err != nil {
			return nil, err
		}
		setter.Date = omit.From(date)
	}
	if input.Body.CategoryID != nil {
		if *input.Body.CategoryID == 0 {
			setter.CategoryID = omitnull.FromPtr[int64](nil)
		} else {
			setter.CategoryID = omitnull.From(*input.Body.CategoryID)
		}
	}

	transaction, err := h.TransactionService.UpdateTransaction(ctx, userID, input.ID, setter)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &UpdateTransactionOutput{
		Body: UpdateTransactionResponse{
			Message:     "Transaction updated successfully",
			Transaction: serializeTransaction(transaction),
		},
	}, nil
}
