package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// mockAuthService is a mock for authenticator.
type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, identifier, password string) (*sqlconfig.User, string, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*sqlconfig.User), args.String(1), args.Error(2)
}

func newLoginTestAPI(t *testing.T, svc authenticator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLoginHandler(svc).Register(api)
	return api
}

func TestHTTP_Login_Success(t *testing.T) {
	mockSvc := new(mockAuthService)
	mockSvc.On("Login", mock.Anything, "alice@example.com", "Sup3rSecret").
		Return(&sqlconfig.User{
			ID:        5,
			Username:  "alice",
			Email:     "alice@example.com",
			Role:      sqlconfig.RoleUser,
			CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		}, "token-123", nil)

	resp := newLoginTestAPI(t, mockSvc).Post("/api/auth/login", LoginBody{
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, "token-123", body.AccessToken)
	assert.Equal(t, "alice", body.User.Username)
	assert.Equal(t, "2026-01-01 09:00:00", body.User.CreatedAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_UsernameFallback(t *testing.T) {
	mockSvc := new(mockAuthService)
	mockSvc.On("Login", mock.Anything, "alice", "Sup3rSecret").
		Return(&sqlconfig.User{ID: 5, Username: "alice"}, "token-123", nil)

	resp := newLoginTestAPI(t, mockSvc).Post("/api/auth/login", LoginBody{
		Username: "alice",
		Password: "Sup3rSecret",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_MissingIdentifier(t *testing.T) {
	mockSvc := new(mockAuthService)

	resp := newLoginTestAPI(t, mockSvc).Post("/api/auth/login", LoginBody{
		Password: "Sup3rSecret",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Missing required fields")
	mockSvc.AssertNotCalled(t, "Login")
}

func TestHTTP_Login_BadCredentials(t *testing.T) {
	mockSvc := new(mockAuthService)
	mockSvc.On("Login", mock.Anything, "alice", "WrongPassw0rd").
		Return(nil, "", service.ErrInvalidCredentials)

	resp := newLoginTestAPI(t, mockSvc).Post("/api/auth/login", LoginBody{
		Username: "alice",
		Password: "WrongPassw0rd",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
