package account

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

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name     string   `json:"name" required:"true" minLength:"1" doc:"Account name"`
	Balance  *float64 `json:"balance,omitempty" doc:"Initial balance, defaults to 0"`
	Currency string   `json:"currency,omitempty" doc:"ISO currency code, defaults to UAH"`
	IsActive *bool    `json:"is_active,omitempty" doc:"Active flag, defaults to true"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	Message string  `json:"message" doc:"Human readable confirmation"`
	Account Account `json:"account"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, create *sqlconfig.AccountCreate) (*sqlconfig.Account, error)
}

// CreateAccountHandler handles POST /api/accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/api/accounts",
		Summary:     "Create an account",
		Description: "Creates an account owned by the caller.",
		Tags:        []string{"Accounts"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}
	logData := logging.GetLogData(ctx)

	balance := decimal.Zero
	if input.Body.Balance != nil {
		balance = decimal.NewFromFloat(*input.Body.Balance)
	}
	isActive := true
	if input.Body.IsActive != nil {
		isActive = *input.Body.IsActive
	}

	account, err := h.AccountService.CreateAccount(ctx, &sqlconfig.AccountCreate{
		UserID:   userID,
		Name:     input.Body.Name,
		Balance:  balance,
		Currency: input.Body.Currency,
		IsActive: isActive,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	if logData != nil {
		logData.AddData("accountID", account.ID)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body: CreateAccountResponse{
			Message: "Account created successfully",
			Account: serializeAccount(account),
		},
	}, nil
}
