package sales

import "context"

// Repository defines data access for the append-only sales log.
type Repository interface {
	// Append writes one record to the end of the log.
	Append(ctx context.Context, rec Record) error
	// List returns all records in log order.
	List(ctx context.Context) ([]Record, error)
}
