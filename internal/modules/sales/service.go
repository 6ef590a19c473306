package sales

import (
	"context"
	"time"
)

// Service defines sales-log business logic.
type Service interface {
	// Log appends one aggregate record for a completed sale.
	Log(ctx context.Context, total float64) (Record, error)
	// List returns the full sales log in order.
	List(ctx context.Context) ([]Record, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new sales service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Log(ctx context.Context, total float64) (Record, error) {
	rec := Record{At: s.now().Truncate(time.Second), Total: total}
	if err := s.repo.Append(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}
