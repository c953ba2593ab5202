package pricing

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreUpsertAndLookup(t *testing.T) {
	store := NewMemoryOverrideStore()

	require.NoError(t, store.Upsert("ภูเก็ต", "คอนโด", 70000))

	price, ok := store.Lookup("ภูเก็ต", "คอนโด")
	require.True(t, ok)
	assert.Equal(t, 70000.0, price)

	// The exact pair is the key: same province, other type misses
	_, ok = store.Lookup("ภูเก็ต", "บ้านเดี่ยว")
	assert.False(t, ok)
	_, ok = store.Lookup("เชียงใหม่", "คอนโด")
	assert.False(t, ok)
}

func TestStoreUpsertReplacesEntry(t *testing.T) {
	store := NewMemoryOverrideStore()

	require.NoError(t, store.Upsert("ภูเก็ต", "คอนโด", 70000))
	require.NoError(t, store.Upsert("ภูเก็ต", "คอนโด", 90000))

	price, ok := store.Lookup("ภูเก็ต", "คอนโด")
	require.True(t, ok)
	assert.Equal(t, 90000.0, price)
	assert.Equal(t, 1, store.Len())
}

func TestStoreUpsertIdempotent(t *testing.T) {
	store := NewMemoryOverrideStore()

	require.NoError(t, store.Upsert("ภูเก็ต", "คอนโด", 70000))
	require.NoError(t, store.Upsert("ภูเก็ต", "คอนโด", 70000))

	assert.Equal(t, 1, store.Len())
	price, ok := store.Lookup("ภูเก็ต", "คอนโด")
	require.True(t, ok)
	assert.Equal(t, 70000.0, price)
}

func TestStoreRejectsInvalidPrices(t *testing.T) {
	store := NewMemoryOverrideStore()

	tests := []struct {
		name  string
		price float64
	}{
		{"Zero", 0},
		{"Negative", -100},
		{"NaN", math.NaN()},
		{"PositiveInf", math.Inf(1)},
		{"NegativeInf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Upsert("ภูเก็ต", "คอนโด", tt.price)
			assert.ErrorIs(t, err, ErrInvalidPrice)
		})
	}

	assert.Equal(t, 0, store.Len())
}

func TestStoreList(t *testing.T) {
	store := NewMemoryOverrideStore()
	require.NoError(t, store.Upsert("ภูเก็ต", "คอนโด", 70000))
	require.NoError(t, store.Upsert("เชียงใหม่", "บ้านเดี่ยว", 45000))

	overrides := store.List()
	require.Len(t, overrides, 2)

	byKey := map[string]float64{}
	for _, o := range overrides {
		byKey[o.Province+"|"+o.PropertyType] = o.BasePricePerSqm
	}
	assert.Equal(t, 70000.0, byKey["ภูเก็ต|คอนโด"])
	assert.Equal(t, 45000.0, byKey["เชียงใหม่|บ้านเดี่ยว"])
}

func TestStoreConcurrentUpserts(t *testing.T) {
	store := NewMemoryOverrideStore()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(price float64) {
			defer wg.Done()
			assert.NoError(t, store.Upsert("ภูเก็ต", "คอนโด", price))
		}(float64(i * 1000))
	}
	wg.Wait()

	// Last write wins; which write was last is unspecified, but
	// exactly one entry must remain and it must be one of the writes.
	assert.Equal(t, 1, store.Len())
	price, ok := store.Lookup("ภูเก็ต", "คอนโด")
	require.True(t, ok)
	assert.GreaterOrEqual(t, price, 1000.0)
	assert.LessOrEqual(t, price, 50000.0)
}
