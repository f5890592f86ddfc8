package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/entity"
)

func newTestStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voese.db")
	store, err := NewStore(path, maxBytes)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	// Colección nunca escrita: vacía, sin error.
	productos, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, productos)

	quiere := []entity.Product{{
		ID:             "p1",
		Name:           "Jabón líquido 1L",
		Stock:          40,
		WholesalePrice: decimal.NewFromInt(10000),
		RetailPrice:    decimal.NewFromInt(12000),
	}}
	require.NoError(t, store.SaveProducts(ctx, quiere))

	tiene, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	require.Len(t, tiene, 1)
	assert.Equal(t, quiere[0].ID, tiene[0].ID)
	assert.Equal(t, quiere[0].Stock, tiene[0].Stock)
	assert.True(t, quiere[0].WholesalePrice.Equal(tiene[0].WholesalePrice))
}

func TestStoreSaveReplacesAll(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.SaveExpenses(ctx, []entity.Expense{
		{ID: "g1", Type: entity.ExpenseTypePersonal, Amount: decimal.NewFromInt(5000)},
		{ID: "g2", Type: entity.ExpenseTypeFabricacion, Amount: decimal.NewFromInt(7000)},
	}))
	require.NoError(t, store.SaveExpenses(ctx, []entity.Expense{
		{ID: "g2", Type: entity.ExpenseTypeFabricacion, Amount: decimal.NewFromInt(7000)},
	}))

	gastos, err := store.LoadExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, gastos, 1)
	assert.Equal(t, "g2", gastos[0].ID)
}

func TestStoreCapacityExceeded(t *testing.T) {
	store := newTestStore(t, 256)
	ctx := context.Background()

	grande := []entity.Product{{
		ID:   "p1",
		Name: strings.Repeat("x", 512),
	}}
	err := store.SaveProducts(ctx, grande)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	// Nada quedó escrito.
	productos, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, productos)
}
