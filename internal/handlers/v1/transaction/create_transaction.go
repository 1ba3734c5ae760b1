package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID   int64   `json:"account_id" required:"true" doc:"Owning account id"`
	CategoryID  *int64  `json:"category_id,omitempty" doc:"Category id, omit for uncategorized"`
	Amount      float64 `json:"amount" required:"true" doc:"Positive decimal amount"`
	Type        string  `json:"type" required:"true" enum:"income,expense,transfer" doc:"Transaction type"`
	Description string  `json:"description,omitempty" doc:"Free text description"`
	Date        string  `json:"date" required:"true" doc:"Transaction date, YYYY-MM-DD"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	Message     string      `json:"message" doc:"Human readable confirmation"`
	Transaction Transaction `json:"transaction"`
}

// CreateTransactionOutput is the response for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for recording transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error)
}

// CreateTransactionHandler handles POST /api/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/api/transactions",
		Summary:     "Create a transaction",
		Description: "Records a transaction and applies its effect to the account balance.",
		Tags:        []string{"Transactions"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}
	logData := logging.GetLogData(ctx)

	date, err := parseDate(input.Body.Date, "")
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	transaction, err := h.TransactionService.CreateTransaction(ctx, &sqlconfig.TransactionCreate{
		UserID:      userID,
		AccountID:   input.Body.AccountID,
		CategoryID:  input.Body.CategoryID,
		Amount:      decimal.NewFromFloat(input.Body.Amount),
		Type:        input.Body.Type,
		Description: input.Body.Description,
		Date:        date,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err)
	}

	if logData != nil {
		logData.AddData("transactionID", transaction.ID)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: CreateTransactionResponse{
			Message:     "Transaction created successfully",
			Transaction: serializeTransaction(transaction),
		},
	}, nil
}
