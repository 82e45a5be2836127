package persistence

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivan0796/swaplaunch-sub000/internal/domain"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := NewStorage(filepath.Join(t.TempDir(), "swaps.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func swapAt(id, wallet string, ts time.Time) *domain.SwapRecord {
	return &domain.SwapRecord{
		ID:            id,
		WalletAddress: wallet,
		Chain:         domain.ChainEthereum,
		TokenIn:       "0x1111111111111111111111111111111111111111",
		TokenOut:      "0x2222222222222222222222222222222222222222",
		AmountIn:      "1000000",
		AmountOut:     "997000",
		FeeAmount:     "3000",
		Timestamp:     ts,
	}
}

func TestSaveAndListSwapsNewestFirst(t *testing.T) {
	store := newTestStorage(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveSwap(swapAt("a", "0xAbC", base)))
	require.NoError(t, store.SaveSwap(swapAt("b", "0xAbC", base.Add(time.Minute))))
	require.NoError(t, store.SaveSwap(swapAt("c", "0xAbC", base.Add(2*time.Minute))))

	records, err := store.ListSwaps("", 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, "a", records[2].ID)
}

func TestListSwapsWalletFilterIsCaseInsensitive(t *testing.T) {
	store := newTestStorage(t)

	now := time.Now().UTC()
	require.NoError(t, store.SaveSwap(swapAt("mine", "0xAbCdEf", now)))
	require.NoError(t, store.SaveSwap(swapAt("other", "0x999999", now)))

	records, err := store.ListSwaps("0xABCDEF", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "mine", records[0].ID)
}

func TestListSwapsCapsAtLimit(t *testing.T) {
	store := newTestStorage(t)

	base := time.Now().UTC()
	batch := make([]*domain.SwapRecord, 0, 10)
	for i := 0; i < 10; i++ {
		batch = append(batch, swapAt(fmt.Sprintf("swap-%d", i), "0xAbC", base.Add(time.Duration(i)*time.Second)))
	}
	require.NoError(t, store.SaveSwapBatch(batch))

	records, err := store.ListSwaps("", 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "swap-9", records[0].ID)
}

func TestSaveSwapOverwritesSameID(t *testing.T) {
	store := newTestStorage(t)

	ts := time.Now().UTC()
	first := swapAt("dup", "0xAbC", ts)
	require.NoError(t, store.SaveSwap(first))

	second := swapAt("dup", "0xAbC", ts)
	second.AmountOut = "990000"
	require.NoError(t, store.SaveSwap(second))

	records, err := store.ListSwaps("", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "990000", records[0].AmountOut)
}
