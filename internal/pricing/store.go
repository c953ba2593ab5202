package pricing

import (
	"errors"
	"math"
	"sync"

	"manjai/server/internal/models"
)

var ErrInvalidPrice = errors.New("base price must be a finite positive number")

// OverrideStore holds administrator-supplied base prices keyed by
// (province, property type). Implementations must be safe for
// concurrent use; writes to the same key are last-write-wins.
type OverrideStore interface {
	Upsert(province, propertyType string, basePricePerSqm float64) error
	Lookup(province, propertyType string) (float64, bool)
	List() []models.PriceOverride
	Len() int
}

type overrideKey struct {
	province     string
	propertyType string
}

// MemoryOverrideStore is the in-memory OverrideStore used in
// production. Entries live for the process lifetime and are never
// persisted.
type MemoryOverrideStore struct {
	mu      sync.RWMutex
	entries map[overrideKey]float64
}

func NewMemoryOverrideStore() *MemoryOverrideStore {
	return &MemoryOverrideStore{
		entries: make(map[overrideKey]float64),
	}
}

// Upsert inserts or replaces the entry for the exact
// (province, propertyType) pair. Keys are compared exactly, matching
// the upload format; no normalization is applied.
func (s *MemoryOverrideStore) Upsert(province, propertyType string, basePricePerSqm float64) error {
	if basePricePerSqm <= 0 || math.IsInf(basePricePerSqm, 0) || math.IsNaN(basePricePerSqm) {
		return ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[overrideKey{province: province, propertyType: propertyType}] = basePricePerSqm
	return nil
}

// Lookup returns the override price for the exact pair, if present.
func (s *MemoryOverrideStore) Lookup(province, propertyType string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	price, ok := s.entries[overrideKey{province: province, propertyType: propertyType}]
	return price, ok
}

// List returns all entries. Ordering is not meaningful.
func (s *MemoryOverrideStore) List() []models.PriceOverride {
	s.mu.RLock()
	defer s.mu.RUnlock()

	overrides := make([]models.PriceOverride, 0, len(s.entries))
	for key, price := range s.entries {
		overrides = append(overrides, models.PriceOverride{
			Province:        key.province,
			PropertyType:    key.propertyType,
			BasePricePerSqm: price,
		})
	}
	return overrides
}

// Len returns the number of stored entries.
func (s *MemoryOverrideStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
