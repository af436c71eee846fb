package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials deliberately covers both unknown email and wrong
// password so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserRole is one row of the user/role join: user columns are duplicated
// across rows, one row per assigned role.
type UserRole struct {
	UserID       int
	EmployeeID   string
	Email        string
	PasswordHash string
	RoleName     string
}

type Repository interface {
	// GetUserWithRolesByEmail returns the join rows for the account, or an
	// empty slice when the email is unknown or the account has no roles.
	GetUserWithRolesByEmail(ctx context.Context, email string) ([]UserRole, error)
}
