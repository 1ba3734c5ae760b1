package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// AuthService handles registration, login and identity lookups.
type AuthService struct {
	storage *storage.Storage
	tokens  *auth.TokenManager
}

func NewAuthService(store *storage.Storage, tokens *auth.TokenManager) *AuthService {
	return &AuthService{storage: store, tokens: tokens}
}

// Register creates a user and issues a token for it. Duplicate username or
// email is a conflict; the password must pass the policy checks.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*sqlconfig.User, string, error) {
	if username == "" || email == "" || password == "" {
		return nil, "", &ValidationError{Message: "Missing required fields"}
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, "", &ValidationError{Message: err.Error()}
	}

	if _, err := s.storage.Users.FindByUsername(ctx, username); err == nil {
		return nil, "", &ConflictError{Message: "Username already exists"}
	} else if !isNoRows(err) {
		return nil, "", err
	}
	if _, err := s.storage.Users.FindByEmail(ctx, email); err == nil {
		return nil, "", &ConflictError{Message: "Email already exists"}
	} else if !isNoRows(err) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.storage.Users.Insert(ctx, &sqlconfig.UserCreate{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         sqlconfig.RoleUser,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials against either the email or the username and
// issues a token. Every failure mode collapses into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*sqlconfig.User, string, error) {
	if identifier == "" || password == "" {
		return nil, "", &ValidationError{Message: "Missing required fields"}
	}

	user, err := s.storage.Users.FindByEmail(ctx, identifier)
	if isNoRows(err) {
		user, err = s.storage.Users.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if isNoRows(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Me returns the authenticated user's own record.
func (s *AuthService) Me(ctx context.Context, userID int64) (*sqlconfig.User, error) {
	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "User"}
		}
		return nil, err
	}
	return user, nil
}
