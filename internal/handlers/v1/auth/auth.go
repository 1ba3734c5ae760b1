package auth

import (
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const timestampLayout = "2006-01-02 15:04:05"

// User is the API response model for a user.
type User struct {
	ID        int64  `json:"id" doc:"User id"`
	Username  string `json:"username" doc:"Unique username"`
	Email     string `json:"email" doc:"Unique email"`
	Role      string `json:"role" doc:"user or admin"`
	CreatedAt string `json:"created_at" doc:"Registration timestamp"`
}

func serializeUser(user *sqlconfig.User) User {
	return User{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(timestampLayout),
	}
}
