package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// LoginBody is the request body for logging in. Either email or username
// identifies the account.
type LoginBody struct {
	Email    string `json:"email,omitempty" doc:"Account email"`
	Username string `json:"username,omitempty" doc:"Account username, used when email is absent"`
	Password string `json:"password" required:"true" doc:"Plaintext password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginResponse is the response body for logging in.
type LoginResponse struct {
	Message     string `json:"message" doc:"Human readable confirmation"`
	AccessToken string `json:"access_token" doc:"Bearer token for subsequent calls"`
	User        User   `json:"user"`
}

// LoginOutput is the response for logging in.
type LoginOutput struct {
	Body LoginResponse
}

// authenticator is the interface for checking credentials.
type authenticator interface {
	Login(ctx context.Context, identifier, password string) (*sqlconfig.User, string, error)
}

// LoginHandler handles POST /api/auth/login.
type LoginHandler struct {
	AuthService authenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Log in",
		Description: "Checks credentials and returns a bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	identifier := input.Body.Email
	if identifier == "" {
		identifier = input.Body.Username
	}
	if identifier == "" {
		return nil, httperr.New(http.StatusBadRequest, "Missing required fields")
	}

	user, token, err := h.AuthService.Login(ctx, identifier, input.Body.Password)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &LoginOutput{
		Body: LoginResponse{
			Message:     "Login successful",
			AccessToken: token,
			User:        serializeUser(user),
		},
	}, nil
}
