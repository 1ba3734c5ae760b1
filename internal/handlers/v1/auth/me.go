package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// MeResponse is the response body for the identity lookup.
type MeResponse struct {
	User User `json:"user"`
}

// MeOutput is the response for the identity lookup.
type MeOutput struct {
	Body MeResponse
}

// identityReader is the interface for loading the caller's own record.
type identityReader interface {
	Me(ctx context.Context, userID int64) (*sqlconfig.User, error)
}

// MeHandler handles GET /api/auth/me.
type MeHandler struct {
	AuthService identityReader
}

// NewMeHandler creates a new MeHandler.
func NewMeHandler(svc identityReader) *MeHandler {
	return &MeHandler{AuthService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *MeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "me",
		Method:      http.MethodGet,
		Path:        "/api/auth/me",
		Summary:     "Current user",
		Description: "Returns the authenticated user's record.",
		Tags:        []string{"Auth"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *MeHandler) handle(ctx context.Context, _ *struct{}) (*MeOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}

	user, err := h.AuthService.Me(ctx, userID)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &MeOutput{Body: MeResponse{User: serializeUser(user)}}, nil
}
