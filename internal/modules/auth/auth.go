package auth

import (
	"context"
	"errors"
)

// Roles carried in login tokens.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// ErrUnknownRole is returned for a login attempt with a role outside the
// admin/cashier pair.
var ErrUnknownRole = errors.New("unknown role")

// LoginResult is what a successful login returns. SessionID is set for
// cashier logins only; it keys the in-memory cart on the POS side.
type LoginResult struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password, role string) (*LoginResult, error)
}
