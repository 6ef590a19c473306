package accounts

import (
	"context"
	"fmt"

	"github.com/smartmart/pos-backend/internal/store"
)

type fileRepo struct {
	admin    *store.File
	cashiers *store.File
}

// NewFileRepository builds a Repository backed by the flat-file store.
func NewFileRepository(s *store.Store) Repository {
	return &fileRepo{admin: s.Admin, cashiers: s.Cashiers}
}

func (r *fileRepo) GetAdmin(ctx context.Context) (*Credential, error) {
	records, err := r.admin.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("admin record missing from %s", r.admin.Path())
	}
	c, err := decodeCredential(records[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.admin.Path(), err)
	}
	return c, nil
}

func (r *fileRepo) SetAdmin(ctx context.Context, c Credential) error {
	return r.admin.Update(func(records [][]string) ([][]string, error) {
		return [][]string{encodeCredential(c)}, nil
	})
}

func (r *fileRepo) ListCashiers(ctx context.Context) ([]Credential, error) {
	records, err := r.cashiers.ReadAll()
	if err != nil {
		return nil, err
	}
	cashiers := make([]Credential, 0, len(records))
	for _, fields := range records {
		c, err := decodeCredential(fields)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.cashiers.Path(), err)
		}
		cashiers = append(cashiers, *c)
	}
	return cashiers, nil
}

func (r *fileRepo) AddCashier(ctx context.Context, c Credential) error {
	// Uniqueness check and append share one read-check-write span under
	// the file lock.
	return r.cashiers.Update(func(records [][]string) ([][]string, error) {
		for _, fields := range records {
			if len(fields) > 0 && fields[0] == c.Username {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateCashier, c.Username)
			}
		}
		return append(records, encodeCredential(c)), nil
	})
}

func (r *fileRepo) RemoveCashier(ctx context.Context, username string) error {
	return r.cashiers.Update(func(records [][]string) ([][]string, error) {
		kept := records[:0]
		found := false
		for _, fields := range records {
			if len(fields) > 0 && fields[0] == username {
				found = true
				continue
			}
			kept = append(kept, fields)
		}
		if !found {
			return nil, ErrCashierNotFound
		}
		return kept, nil
	})
}

func encodeCredential(c Credential) []string {
	return []string{c.Username, c.Password}
}

func decodeCredential(fields []string) (*Credential, error) {
	if len(fields) != 2 {
		return nil, fmt.Errorf("malformed credential record %q", fields)
	}
	return &Credential{Username: fields[0], Password: fields[1]}, nil
}
