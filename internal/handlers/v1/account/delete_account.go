package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	ID int64 `path:"id" doc:"Account id"`
}

// DeleteAccountResponse is the response body for deleting an account.
type DeleteAccountResponse struct {
	Message string `json:"message" doc:"Human readable confirmation"`
}

// DeleteAccountOutput is the response for deleting an account.
type DeleteAccountOutput struct {
	Body DeleteAccountResponse
}

// accountDeleter is the interface for deleting accounts.
type accountDeleter interface {
	DeleteAccount(ctx context.Context, userID, id int64) error
}

// DeleteAccountHandler handles DELETE /api/accounts/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/api/accounts/{id}",
		Summary:     "Delete an account",
		Description: "Removes one of the caller's accounts and its transactions.",
		Tags:        []string{"Accounts"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.AccountService.DeleteAccount(ctx, userID, input.ID); err != nil {
		return nil, httperr.FromService(err)
	}
	return &DeleteAccountOutput{Body: DeleteAccountResponse{Message: "Account deleted successfully"}}, nil
}
