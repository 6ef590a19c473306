package sales_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmart/pos-backend/internal/modules/sales"
	"github.com/smartmart/pos-backend/internal/store"
)

func newService(t *testing.T) (sales.Service, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return sales.NewService(sales.NewFileRepository(st)), st
}

func TestLogAndList(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Log(ctx, 12.5)
	require.NoError(t, err)
	_, err = svc.Log(ctx, 99.999)
	require.NoError(t, err)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, first.At, records[0].At, "timestamp round-trips through the log")
	assert.InDelta(t, 12.5, records[0].Total, 0.001)
	assert.InDelta(t, 100.0, records[1].Total, 0.001, "totals are stored at cent precision")
}

func TestRecordFormatOnDisk(t *testing.T) {
	svc, st := newService(t)

	rec, err := svc.Log(context.Background(), 42.0)
	require.NoError(t, err)

	data, err := os.ReadFile(st.Bills.Path())
	require.NoError(t, err)
	assert.Equal(t, rec.At.Format("2006-01-02 15:04:05")+",42.00\n", string(data))
}

func TestListEmptyLog(t *testing.T) {
	svc, _ := newService(t)
	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTimestampsHaveSecondPrecision(t *testing.T) {
	svc, _ := newService(t)

	rec, err := svc.Log(context.Background(), 1.0)
	require.NoError(t, err)
	assert.Equal(t, rec.At, rec.At.Truncate(time.Second))
}
