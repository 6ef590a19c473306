package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartmart/pos-backend/internal/modules/accounts"
)

type service struct {
	accounts accounts.Service
	secret   []byte
}

// NewService creates a new auth service signing tokens with the given secret.
func NewService(accountsSvc accounts.Service, secret string) Service {
	return &service{accounts: accountsSvc, secret: []byte(secret)}
}

func (s *service) Login(ctx context.Context, username, password, role string) (*LoginResult, error) {
	var sessionID string
	switch role {
	case RoleAdmin:
		if err := s.accounts.AuthenticateAdmin(ctx, username, password); err != nil {
			return nil, err
		}
	case RoleCashier:
		if err := s.accounts.AuthenticateCashier(ctx, username, password); err != nil {
			return nil, err
		}
		sessionID = uuid.NewString()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}

	token, err := SignToken(s.secret, username, role, sessionID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		Username:  username,
		Role:      role,
		SessionID: sessionID,
	}, nil
}
