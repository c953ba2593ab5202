package pricing

import (
	"errors"
	"math"

	"manjai/server/config"
	"manjai/server/internal/models"
)

var ErrInvalidArea = errors.New("area must be a non-negative number")

// Estimator produces quick price estimates from the built-in defaults,
// the province reference table and any uploaded overrides. It holds no
// state of its own beyond the injected store.
type Estimator struct {
	store OverrideStore
}

func NewEstimator(store OverrideStore) *Estimator {
	return &Estimator{store: store}
}

// Estimate computes the quick estimate for a property.
//
// The base price per m² is resolved in precedence order: an uploaded
// override for the exact (province, propertyType) pair, then the
// property type's built-in default, then the global fallback for
// unrecognized types. The multiplier comes from the province reference
// table; an unknown province uses 1.0 and reports no region.
//
// Zero area is a valid degenerate request and yields a zero estimate.
func (e *Estimator) Estimate(propertyType, province string, area float64) (*models.EstimateResult, error) {
	if area < 0 || math.IsInf(area, 0) || math.IsNaN(area) {
		return nil, ErrInvalidArea
	}

	basePrice, source := e.resolveBasePrice(propertyType, province)

	multiplier := 1.0
	region := ""
	var reportedMultiplier *float64
	if info, ok := config.LookupProvince(province); ok {
		multiplier = info.Multiplier
		region = string(info.Region)
		reportedMultiplier = &multiplier
	}

	pricePerSqm := basePrice * multiplier
	return &models.EstimateResult{
		EstimatedPrice: area * pricePerSqm,
		PricePerSqm:    pricePerSqm,
		Area:           area,
		Province:       province,
		Region:         region,
		Multiplier:     reportedMultiplier,
		PriceSource:    source,
	}, nil
}

func (e *Estimator) resolveBasePrice(propertyType, province string) (float64, models.PriceSource) {
	if price, ok := e.store.Lookup(province, propertyType); ok {
		return price, models.PriceSourceOverride
	}
	if price, ok := DefaultBasePrice(propertyType); ok {
		return price, models.PriceSourceDefault
	}
	return FallbackBasePrice, models.PriceSourceFallback
}
