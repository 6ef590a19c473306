package accounts

import (
	"context"
	"errors"
)

// Sentinel errors surfaced by the accounts service. Handlers map these to
// HTTP status codes; everything else is treated as an internal failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyField         = errors.New("username and password are required")
	ErrDuplicateCashier   = errors.New("cashier already exists")
	ErrCashierNotFound    = errors.New("cashier not found")
	ErrPasswordMismatch   = errors.New("old password does not match")
)

// Service defines credential business logic for the administrator and
// cashier accounts.
type Service interface {
	AuthenticateAdmin(ctx context.Context, username, password string) error
	AuthenticateCashier(ctx context.Context, username, password string) error
	AddCashier(ctx context.Context, username, password string) error
	RemoveCashier(ctx context.Context, username string) error
	ListCashiers(ctx context.Context) ([]string, error)
	ChangeAdminPassword(ctx context.Context, oldPassword, newPassword string) error
}

type service struct{ repo Repository }

// NewService creates a new accounts service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) AuthenticateAdmin(ctx context.Context, username, password string) error {
	admin, err := s.repo.GetAdmin(ctx)
	if err != nil {
		return err
	}
	if !credentialsMatch(*admin, username, password) {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *service) AuthenticateCashier(ctx context.Context, username, password string) error {
	cashiers, err := s.repo.ListCashiers(ctx)
	if err != nil {
		return err
	}
	for _, c := range cashiers {
		if credentialsMatch(c, username, password) {
			return nil
		}
	}
	return ErrInvalidCredentials
}

func (s *service) AddCashier(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyField
	}
	return s.repo.AddCashier(ctx, Credential{Username: username, Password: password})
}

func (s *service) RemoveCashier(ctx context.Context, username string) error {
	return s.repo.RemoveCashier(ctx, username)
}

func (s *service) ListCashiers(ctx context.Context) ([]string, error) {
	cashiers, err := s.repo.ListCashiers(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cashiers))
	for _, c := range cashiers {
		names = append(names, c.Username)
	}
	return names, nil
}

func (s *service) ChangeAdminPassword(ctx context.Context, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return ErrEmptyField
	}
	admin, err := s.repo.GetAdmin(ctx)
	if err != nil {
		return err
	}
	if admin.Password != oldPassword {
		return ErrPasswordMismatch
	}
	return s.repo.SetAdmin(ctx, Credential{Username: admin.Username, Password: newPassword})
}
