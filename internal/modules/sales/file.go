package sales

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/smartmart/pos-backend/internal/store"
)

type fileRepo struct{ bills *store.File }

// NewFileRepository builds a Repository backed by the flat-file store.
func NewFileRepository(s *store.Store) Repository {
	return &fileRepo{bills: s.Bills}
}

func (r *fileRepo) Append(ctx context.Context, rec Record) error {
	return r.bills.Append(
		rec.At.Format(timeLayout),
		strconv.FormatFloat(rec.Total, 'f', 2, 64),
	)
}

func (r *fileRepo) List(ctx context.Context) ([]Record, error) {
	lines, err := r.bills.ReadAll()
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(lines))
	for _, fields := range lines {
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed sales record %q", fields)
		}
		at, err := time.Parse(timeLayout, fields[0])
		if err != nil {
			return nil, fmt.Errorf("malformed sales timestamp %q: %w", fields[0], err)
		}
		total, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed sales total %q: %w", fields[1], err)
		}
		records = append(records, Record{At: at, Total: total})
	}
	return records, nil
}
