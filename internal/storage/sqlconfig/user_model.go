package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user record.
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string // defaults to RoleUser when empty
}

// UserSetter carries partial updates; unset fields are left untouched.
type UserSetter struct {
	Username omit.Val[string]
	Email    omit.Val[string]
	Role     omit.Val[string]
}

// UserFilter specifies filters for listing users.
type UserFilter struct {
	Search string // matches username or email substring
	Role   string
	Limit  int
	Offset int
}

// IUserTable defines the interface for user storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IUserTable interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	List(ctx context.Context, filter *UserFilter) ([]*User, int64, error)
	Update(ctx context.Context, id int64, setter *UserSetter) (*User, error)
	Delete(ctx context.Context, id int64) error
}
