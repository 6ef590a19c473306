package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors surfaced by the catalog service.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrEmptyField        = errors.New("product id, name, and category are required")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Service defines catalog business logic.
type Service interface {
	UpsertProduct(ctx context.Context, req UpsertProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	// ListProducts filters by exact category (empty means all) and by
	// case-insensitive name substring (empty means no search).
	ListProducts(ctx context.Context, category, search string) ([]*Product, error)
	RemoveProduct(ctx context.Context, id string) error
	// UpdateQuantity sets a product's stock to an absolute value.
	UpdateQuantity(ctx context.Context, id string, quantity int) (*Product, error)
	Categories() []string
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) UpsertProduct(ctx context.Context, req UpsertProductRequest) (*Product, error) {
	if req.ID == "" || req.Name == "" || req.Category == "" {
		return nil, ErrEmptyField
	}
	if !ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, req.Category)
	}
	if req.Price < 0 {
		return nil, ErrNegativePrice
	}
	if req.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	p := &Product{
		ID:       req.ID,
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, category, search string) ([]*Product, error) {
	products, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return products, nil
	}
	needle := strings.ToLower(search)
	matched := products[:0]
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *service) RemoveProduct(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}

func (s *service) UpdateQuantity(ctx context.Context, id string, quantity int) (*Product, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	return s.repo.SetQuantity(ctx, id, quantity)
}

func (s *service) Categories() []string {
	out := make([]string, len(Categories))
	copy(out, Categories)
	return out
}
