package catalog

import "context"

// Repository defines data access for catalog records.
type Repository interface {
	// GetByID returns the product with the given id, or ErrProductNotFound.
	GetByID(ctx context.Context, id string) (*Product, error)
	// List returns products in file order, optionally filtered by exact
	// category match.
	List(ctx context.Context, category string) ([]*Product, error)
	// Upsert replaces the record matching p.ID, or appends if absent.
	Upsert(ctx context.Context, p *Product) error
	// Remove deletes the record with the given id, or ErrProductNotFound.
	Remove(ctx context.Context, id string) error
	// SetQuantity rewrites a product's stock to an absolute value in one
	// locked read-modify-write, returning the updated record.
	SetQuantity(ctx context.Context, id string, quantity int) (*Product, error)
	// DecrementStock subtracts the requested quantity from each listed
	// product in one atomic rewrite. If any product is missing or any
	// resulting quantity would go negative, nothing is written.
	DecrementStock(ctx context.Context, quantities map[string]int) error
}
