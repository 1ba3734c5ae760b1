package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// RegisterBody is the request body for registering a user.
type RegisterBody struct {
	Username string `json:"username" required:"true" minLength:"3" maxLength:"50" doc:"Unique username"`
	Email    string `json:"email" required:"true" format:"email" doc:"Unique email"`
	Password string `json:"password" required:"true" doc:"Plaintext password, checked against the policy"`
}

// RegisterInput is the Huma input for registering a user.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterResponse is the response body for registering a user.
type RegisterResponse struct {
	Message     string `json:"message" doc:"Human readable confirmation"`
	AccessToken string `json:"access_token" doc:"Bearer token for subsequent calls"`
	User        User   `json:"user"`
}

// RegisterOutput is the response for registering a user.
type RegisterOutput struct {
	Status int
	Body   RegisterResponse
}

// registrar is the interface for creating user accounts.
type registrar interface {
	Register(ctx context.Context, username, email, password string) (*sqlconfig.User, string, error)
}

// RegisterHandler handles POST /api/auth/register.
type RegisterHandler struct {
	AuthService registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{AuthService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/api/auth/register",
		Summary:     "Register a user",
		Description: "Creates a user and returns a bearer token for it.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	logData := logging.GetLogData(ctx)

	user, token, err := h.AuthService.Register(ctx, input.Body.Username, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	if logData != nil {
		logData.AddData("userID", user.ID)
	}

	return &RegisterOutput{
		Status: http.StatusCreated,
		Body: RegisterResponse{
			Message:     "User registered successfully",
			AccessToken: token,
			User:        serializeUser(user),
		},
	}, nil
}
