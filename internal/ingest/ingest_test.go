package ingest

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manjai/server/internal/pricing"
)

func newTestAdapter() (*Adapter, *pricing.MemoryOverrideStore) {
	store := pricing.NewMemoryOverrideStore()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewAdapter(store, logger), store
}

var testHeader = []string{"province", "property_type", "base_price_per_sqm"}

func TestIngestAppliesAllRows(t *testing.T) {
	adapter, store := newTestAdapter()

	result, err := adapter.Ingest(testHeader, [][]string{
		{"กรุงเทพมหานคร", "คอนโด", "80000"},
		{"เชียงใหม่", "บ้านเดี่ยว", "45000"},
		{"ภูเก็ต", "คอนโด", "70000"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.UpdatedCount)
	assert.Empty(t, result.RowErrors)
	assert.Equal(t, 3, store.Len())

	price, ok := store.Lookup("ภูเก็ต", "คอนโด")
	require.True(t, ok)
	assert.Equal(t, 70000.0, price)
}

func TestIngestBadRowDoesNotAbortBatch(t *testing.T) {
	adapter, store := newTestAdapter()

	result, err := adapter.Ingest(testHeader, [][]string{
		{"กรุงเทพมหานคร", "คอนโด", "80000"},
		{"เชียงใหม่", "บ้านเดี่ยว", "not-a-number"},
		{"ภูเก็ต", "คอนโด", "70000"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.UpdatedCount)
	require.Len(t, result.RowErrors, 1)
	// Header is spreadsheet row 1, so the second data row is row 3
	assert.Equal(t, 3, result.RowErrors[0].Row)

	_, ok := store.Lookup("กรุงเทพมหานคร", "คอนโด")
	assert.True(t, ok)
	_, ok = store.Lookup("ภูเก็ต", "คอนโด")
	assert.True(t, ok)
	_, ok = store.Lookup("เชียงใหม่", "บ้านเดี่ยว")
	assert.False(t, ok)
}

func TestIngestRejectsNonPositivePriceRow(t *testing.T) {
	adapter, store := newTestAdapter()

	result, err := adapter.Ingest(testHeader, [][]string{
		{"ภูเก็ต", "คอนโด", "-500"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.UpdatedCount)
	require.Len(t, result.RowErrors, 1)
	assert.Equal(t, 2, result.RowErrors[0].Row)
	assert.Equal(t, 0, store.Len())
}

func TestIngestMissingColumnsRejectsWholeBatch(t *testing.T) {
	adapter, store := newTestAdapter()

	_, err := adapter.Ingest([]string{"province", "property_type"}, [][]string{
		{"ภูเก็ต", "คอนโด"},
	})

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"base_price_per_sqm"}, missing.Missing)
	assert.Equal(t, 0, store.Len(), "no row may be applied when columns are missing")
}

func TestIngestColumnsAreCaseSensitive(t *testing.T) {
	adapter, _ := newTestAdapter()

	// The exact-match column policy means differently cased headers
	// fail the whole batch.
	_, err := adapter.Ingest([]string{"Province", "property_type", "base_price_per_sqm"}, nil)

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Missing, "province")
}

func TestIngestTrimsTextFields(t *testing.T) {
	adapter, store := newTestAdapter()

	result, err := adapter.Ingest(testHeader, [][]string{
		{"  ภูเก็ต ", " คอนโด ", " 70000 "},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.UpdatedCount)

	price, ok := store.Lookup("ภูเก็ต", "คอนโด")
	require.True(t, ok)
	assert.Equal(t, 70000.0, price)
}

func TestIngestStoresUnknownValuesAsIs(t *testing.T) {
	adapter, store := newTestAdapter()

	// Values unknown to the reference tables are accepted and stored;
	// they are simply inert for estimation.
	result, err := adapter.Ingest(testHeader, [][]string{
		{"Atlantis", "โกดัง", "12345"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.UpdatedCount)

	price, ok := store.Lookup("Atlantis", "โกดัง")
	require.True(t, ok)
	assert.Equal(t, 12345.0, price)
}

func TestIngestShortRowsTreatedAsParseFailure(t *testing.T) {
	adapter, _ := newTestAdapter()

	result, err := adapter.Ingest(testHeader, [][]string{
		{"ภูเก็ต"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.UpdatedCount)
	assert.Len(t, result.RowErrors, 1)
}
