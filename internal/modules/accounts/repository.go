package accounts

import "context"

// Repository defines data access for credential records.
type Repository interface {
	// GetAdmin returns the singular administrator record.
	GetAdmin(ctx context.Context) (*Credential, error)
	// SetAdmin replaces the singular administrator record.
	SetAdmin(ctx context.Context, c Credential) error
	// ListCashiers returns all cashier records in file order.
	ListCashiers(ctx context.Context) ([]Credential, error)
	// AddCashier appends a cashier record, holding the file lock across
	// the uniqueness check. Returns ErrDuplicateCashier on a taken name.
	AddCashier(ctx context.Context, c Credential) error
	// RemoveCashier deletes the record with the given username.
	// Returns ErrCashierNotFound if no such record exists.
	RemoveCashier(ctx context.Context, username string) error
}
