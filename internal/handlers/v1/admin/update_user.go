package admin

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// UpdateUserBody is the request body for updating a user. Absent fields are
// left untouched.
type UpdateUserBody struct {
	Username *string `json:"username,omitempty" doc:"New unique username"`
	Email    *string `json:"email,omitempty" doc:"New unique email address"`
	Role     *string `json:"role,omitempty" doc:"user or admin"`
}

// UpdateUserInput is the Huma input for updating a user.
type UpdateUserInput struct {
	ID   int64 `path:"id" doc:"User id"`
	Body UpdateUserBody
}

// UpdateUserResponse is the response body for updating a user.
type UpdateUserResponse struct {
	Message string `json:"message" doc:"Human readable confirmation"`
	User    User   `json:"user"`
}

// UpdateUserOutput is the response for updating a user.
type UpdateUserOutput struct {
	Body UpdateUserResponse
}

// userUpdater is the interface for updating users.
type userUpdater interface {
	adminGate
	UpdateUser(ctx context.Context, adminID, userID int64, setter *sqlconfig.UserSetter, ip string) (*sqlconfig.User, error)
}

// UpdateUserHandler handles PUT /api/admin/users/{id}.
type UpdateUserHandler struct {
	AdminService userUpdater
}

// NewUpdateUserHandler creates a new UpdateUserHandler.
func NewUpdateUserHandler(svc userUpdater) *UpdateUserHandler {
	return &UpdateUserHandler{AdminService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-update-user",
		Method:      http.MethodPut,
		Path:        "/api/admin/users/{id}",
		Summary:     "Update a user",
		Description: "Changes a user's username, email or role. The change is recorded in the audit log.",
		Tags:        []string{"Admin"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *UpdateUserHandler) handle(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.AdminService.RequireAdmin(ctx, userID); err != nil {
		return nil, httperr.FromService(err)
	}

	setter := &sqlconfig.UserSetter{}
	if input.Body.Username != nil {
		setter.Username = omit.From(*input.Body.Username)
	}
	if input.Body.Email != nil {
		setter.Email = omit.From(*input.Body.Email)
	}
	if input.Body.Role != nil {
		setter.Role = omit.From(*input.Body.Role)
	}

	updated, err := h.AdminService.UpdateUser(ctx, userID, input.ID, setter, identity.ClientIP(ctx))
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &UpdateUserOutput{
		Body: UpdateUserResponse{
			Message: "User updated successfully",
			User:    serializeUser(updated),
		},
	}, nil
}
