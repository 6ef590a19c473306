package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/smartmart/pos-backend/internal/store"
)

type fileRepo struct{ products *store.File }

// NewFileRepository builds a Repository backed by the flat-file store.
func NewFileRepository(s *store.Store) Repository {
	return &fileRepo{products: s.Products}
}

func (r *fileRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	records, err := r.products.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, fields := range records {
		if len(fields) > 0 && fields[0] == id {
			return decodeProduct(fields)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}

func (r *fileRepo) List(ctx context.Context, category string) ([]*Product, error) {
	records, err := r.products.ReadAll()
	if err != nil {
		return nil, err
	}
	var products []*Product
	for _, fields := range records {
		p, err := decodeProduct(fields)
		if err != nil {
			return nil, err
		}
		if category != "" && p.Category != category {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *fileRepo) Upsert(ctx context.Context, p *Product) error {
	return r.products.Update(func(records [][]string) ([][]string, error) {
		for i, fields := range records {
			if len(fields) > 0 && fields[0] == p.ID {
				records[i] = encodeProduct(p)
				return records, nil
			}
		}
		return append(records, encodeProduct(p)), nil
	})
}

func (r *fileRepo) Remove(ctx context.Context, id string) error {
	return r.products.Update(func(records [][]string) ([][]string, error) {
		kept := records[:0]
		found := false
		for _, fields := range records {
			if len(fields) > 0 && fields[0] == id {
				found = true
				continue
			}
			kept = append(kept, fields)
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return kept, nil
	})
}

func (r *fileRepo) SetQuantity(ctx context.Context, id string, quantity int) (*Product, error) {
	var updated *Product
	err := r.products.Update(func(records [][]string) ([][]string, error) {
		for i, fields := range records {
			if len(fields) == 0 || fields[0] != id {
				continue
			}
			p, err := decodeProduct(fields)
			if err != nil {
				return nil, err
			}
			p.Quantity = quantity
			records[i] = encodeProduct(p)
			updated = p
			return records, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *fileRepo) DecrementStock(ctx context.Context, quantities map[string]int) error {
	return r.products.Update(func(records [][]string) ([][]string, error) {
		remaining := make(map[string]int, len(quantities))
		for id, qty := range quantities {
			remaining[id] = qty
		}
		for i, fields := range records {
			p, err := decodeProduct(fields)
			if err != nil {
				return nil, err
			}
			qty, ok := remaining[p.ID]
			if !ok {
				continue
			}
			if p.Quantity < qty {
				return nil, fmt.Errorf("%w: %s has %d, need %d", ErrInsufficientStock, p.ID, p.Quantity, qty)
			}
			p.Quantity -= qty
			records[i] = encodeProduct(p)
			delete(remaining, p.ID)
		}
		for id := range remaining {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return records, nil
	})
}

func encodeProduct(p *Product) []string {
	return []string{
		p.ID,
		p.Name,
		p.Category,
		strconv.FormatFloat(p.Price, 'f', 2, 64),
		strconv.Itoa(p.Quantity),
	}
}

func decodeProduct(fields []string) (*Product, error) {
	if len(fields) != 5 {
		return nil, fmt.Errorf("malformed product record %q", fields)
	}
	price, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed product price %q: %w", fields[3], err)
	}
	qty, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("malformed product quantity %q: %w", fields[4], err)
	}
	return &Product{
		ID:       fields[0],
		Name:     fields[1],
		Category: fields[2],
		Price:    price,
		Quantity: qty,
	}, nil
}
