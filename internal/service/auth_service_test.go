package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func newAuthTestService() (*AuthService, *mockUserTable) {
	users := &mockUserTable{}
	store := &storage.Storage{Users: users}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(store, tokens), users
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newAuthTestService()

	_, _, err := svc.Register(context.Background(), "alice", "", "Sup3rSecret")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Missing required fields", validationErr.Message)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc, _ := newAuthTestService()

	_, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "abcdefgh")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "password must contain at least one uppercase letter", validationErr.Message)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, users := newAuthTestService()

	users.On("FindByUsername", mock.Anything, "alice").
		Return(&sqlconfig.User{ID: 2, Username: "alice"}, nil)

	_, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "Sup3rSecret")

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Username already exists", conflict.Message)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, users := newAuthTestService()

	users.On("FindByUsername", mock.Anything, "alice").Return(nil, sql.ErrNoRows)
	users.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(&sqlconfig.User{ID: 2, Email: "alice@example.com"}, nil)

	_, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "Sup3rSecret")

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Email already exists", conflict.Message)
}

func TestRegister_Success(t *testing.T) {
	svc, users := newAuthTestService()

	users.On("FindByUsername", mock.Anything, "alice").Return(nil, sql.ErrNoRows)
	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, sql.ErrNoRows)
	users.On("Insert", mock.Anything, mock.MatchedBy(func(c *sqlconfig.UserCreate) bool {
		return c.Username == "alice" && c.Email == "alice@example.com" &&
			c.Role == sqlconfig.RoleUser &&
			auth.CheckPassword("Sup3rSecret", c.PasswordHash)
	})).Return(&sqlconfig.User{ID: 5, Username: "alice", Role: sqlconfig.RoleUser}, nil)

	user, token, err := svc.Register(context.Background(), "alice", "alice@example.com", "Sup3rSecret")

	assert.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.NotEmpty(t, token)
}

func loginUser(t *testing.T) *sqlconfig.User {
	t.Helper()
	hash, err := auth.HashPassword("Sup3rSecret")
	assert.NoError(t, err)
	return &sqlconfig.User{ID: 5, Username: "alice", Email: "alice@example.com", PasswordHash: hash}
}

func TestLogin_ByEmail(t *testing.T) {
	svc, users := newAuthTestService()

	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(loginUser(t), nil)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "Sup3rSecret")

	assert.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_FallsBackToUsername(t *testing.T) {
	svc, users := newAuthTestService()

	users.On("FindByEmail", mock.Anything, "alice").Return(nil, sql.ErrNoRows)
	users.On("FindByUsername", mock.Anything, "alice").Return(loginUser(t), nil)

	user, _, err := svc.Login(context.Background(), "alice", "Sup3rSecret")

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	svc, users := newAuthTestService()

	users.On("FindByEmail", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)
	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)

	_, _, err := svc.Login(context.Background(), "ghost", "Sup3rSecret")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users := newAuthTestService()

	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(loginUser(t), nil)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "WrongPassw0rd")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
