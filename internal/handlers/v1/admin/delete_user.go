package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
)

// DeleteUserInput is the Huma input for deleting a user.
type DeleteUserInput struct {
	ID int64 `path:"id" doc:"User id"`
}

// DeleteUserResponse is the response body for deleting a user.
type DeleteUserResponse struct {
	Message string `json:"message" doc:"Human readable confirmation"`
}

// DeleteUserOutput is the response for deleting a user.
type DeleteUserOutput struct {
	Body DeleteUserResponse
}

// userDeleter is the interface for deleting users.
type userDeleter interface {
	adminGate
	DeleteUser(ctx context.Context, adminID, userID int64, ip string) (string, error)
}

// DeleteUserHandler handles DELETE /api/admin/users/{id}.
type DeleteUserHandler struct {
	AdminService userDeleter
}

// NewDeleteUserHandler creates a new DeleteUserHandler.
func NewDeleteUserHandler(svc userDeleter) *DeleteUserHandler {
	return &DeleteUserHandler{AdminService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-delete-user",
		Method:      http.MethodDelete,
		Path:        "/api/admin/users/{id}",
		Summary:     "Delete a user",
		Description: "Removes a user and everything they own. Admin accounts cannot be deleted.",
		Tags:        []string{"Admin"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.AdminService.RequireAdmin(ctx, userID); err != nil {
		return nil, httperr.FromService(err)
	}

	username, err := h.AdminService.DeleteUser(ctx, userID, input.ID, identity.ClientIP(ctx))
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &DeleteUserOutput{
		Body: DeleteUserResponse{Message: "User " + username + " deleted successfully"},
	}, nil
}
