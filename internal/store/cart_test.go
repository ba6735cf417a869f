package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewhub/internal/infra/kv/memory"
)

func TestCartLedger_AddItemMergesByName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := NewCartLedger(memory.New())

	_, err := ledger.AddItem(ctx, "Latte", decimal.NewFromFloat(4.00))
	require.NoError(t, err)

	// Repeated adds bump the quantity and keep the first price.
	items, err := ledger.AddItem(ctx, "Latte", decimal.NewFromFloat(9.99))
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromFloat(4.00)))
}

func TestCartLedger_AddItemIgnoresInvalidInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := NewCartLedger(memory.New())

	items, err := ledger.AddItem(ctx, "", decimal.NewFromFloat(4.00))
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = ledger.AddItem(ctx, "Latte", decimal.NewFromFloat(-1))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartLedger_SequentialLineIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := NewCartLedger(memory.New())

	_, err := ledger.AddItem(ctx, "Latte", decimal.NewFromFloat(4.00))
	require.NoError(t, err)
	items, err := ledger.AddItem(ctx, "Mocha", decimal.NewFromFloat(4.50))
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
}

func TestCartLedger_ChangeQuantityRemovesAtZero(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := NewCartLedger(memory.New())

	items, err := ledger.AddItem(ctx, "Latte", decimal.NewFromFloat(4.00))
	require.NoError(t, err)
	id := items[0].ID

	items, err = ledger.ChangeQuantity(ctx, id, -1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartLedger_ChangeQuantityUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := NewCartLedger(memory.New())

	_, err := ledger.AddItem(ctx, "Latte", decimal.NewFromFloat(4.00))
	require.NoError(t, err)

	items, err := ledger.ChangeQuantity(ctx, 42, 5)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartLedger_TotalsArePure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := NewCartLedger(memory.New())

	_, err := ledger.AddItem(ctx, "Latte", decimal.NewFromFloat(4.00))
	require.NoError(t, err)
	_, err = ledger.AddItem(ctx, "Latte", decimal.NewFromFloat(4.00))
	require.NoError(t, err)
	_, err = ledger.AddItem(ctx, "Mocha", decimal.NewFromFloat(4.50))
	require.NoError(t, err)

	before := ledger.Items()

	totals := ledger.Totals()
	assert.Equal(t, 3, totals.TotalItems)
	assert.True(t, totals.TotalPrice.Equal(decimal.NewFromFloat(12.50)))

	assert.Equal(t, before, ledger.Items())
	assert.Equal(t, totals, ledger.Totals())
}

func TestCartLedger_LoadRestoresStateAndIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := memory.New()

	ledger := NewCartLedger(kv)
	_, err := ledger.AddItem(ctx, "Latte", decimal.NewFromFloat(4.00))
	require.NoError(t, err)
	_, err = ledger.AddItem(ctx, "Mocha", decimal.NewFromFloat(4.50))
	require.NoError(t, err)

	reloaded := NewCartLedger(kv)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, ledger.Items(), reloaded.Items())

	// New lines continue the id sequence after a reload.
	items, err := reloaded.AddItem(ctx, "Espresso", decimal.NewFromFloat(3.00))
	require.NoError(t, err)
	assert.Equal(t, int64(3), items[2].ID)
}

func TestCartLedger_LoadTreatsCorruptValueAsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, kv.Set(ctx, "cart", []byte("{not json")))

	ledger := NewCartLedger(kv)
	require.NoError(t, ledger.Load(ctx))
	assert.Empty(t, ledger.Items())
}
