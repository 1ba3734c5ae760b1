package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// UpdateAccountBody is the request body for updating an account. Absent
// fields are left untouched.
type UpdateAccountBody struct {
	Name     *string  `json:"name,omitempty" minLength:"1" doc:"Account name"`
	Balance  *float64 `json:"balance,omitempty" doc:"Overwrites the cached balance"`
	Currency *string  `json:"currency,omitempty" doc:"ISO currency code"`
	IsActive *bool    `json:"is_active,omitempty" doc:"Active flag"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	ID   int64 `path:"id" doc:"Account id"`
	Body UpdateAccountBody
}

// UpdateAccountResponse is the response body for updating an account.
type UpdateAccountResponse struct {
	Message string  `json:"message" doc:"Human readable confirmation"`
	Account Account `json:"account"`
}

// UpdateAccountOutput is the response for updating an account.
type UpdateAccountOutput struct {
	Body UpdateAccountResponse
}

// accountUpdater is the interface for updating accounts.
type accountUpdater interface {
	UpdateAccount(ctx context.Context, userID, id int64, setter *sqlconfig.AccountSetter) (*sqlconfig.Account, error)
}

// UpdateAccountHandler handles PUT /api/accounts/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/api/accounts/{id}",
		Summary:     "Update an account",
		Description: "Applies a partial update to one of the caller's accounts.",
		Tags:        []string{"Accounts"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	setter := &sqlconfig.AccountSetter{}
	if input.Body.Name != nil {
		setter.Name = omit.From(*input.Body.Name)
	}
	if input.Body.Balance != nil {
		setter.Balance = omit.From(decimal.NewFromFloat(*input.Body.Balance))
	}
	if input.Body.Currency != nil {
		setter.Currency = omit.From(*input.Body.Currency)
	}
	if input.Body.IsActive != nil {
		setter.IsActive = omit.From(*input.Body.IsActive)
	}

	account, err := h.AccountService.UpdateAccount(ctx, userID, input.ID, setter)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &UpdateAccountOutput{
		Body: UpdateAccountResponse{
			Message: "Account updated successfully",
			Account: serializeAccount(account),
		},
	}, nil
}
