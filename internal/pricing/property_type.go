package pricing

// PropertyType is one of the built-in property categories.
type PropertyType string

const (
	TypeCondo      PropertyType = "คอนโด"
	TypeHouse      PropertyType = "บ้านเดี่ยว"
	TypeTownhouse  PropertyType = "ทาวน์เฮาส์"
	TypeCommercial PropertyType = "อาคารพาณิชย์"
	TypeLand       PropertyType = "ที่ดิน"
)

// FallbackBasePrice is used when a request names a property type that
// is not in the built-in set. The request still succeeds; the result
// reports the fallback source so callers can see it happened.
const FallbackBasePrice = 30000

// defaultBasePrices maps each built-in property type to its base price
// per square meter in baht.
var defaultBasePrices = map[PropertyType]float64{
	TypeCondo:      50000,
	TypeHouse:      35000,
	TypeTownhouse:  30000,
	TypeCommercial: 40000,
	TypeLand:       15000,
}

// PropertyTypes returns the built-in property types in display order.
func PropertyTypes() []PropertyType {
	return []PropertyType{TypeCondo, TypeHouse, TypeTownhouse, TypeCommercial, TypeLand}
}

// ParsePropertyType maps a raw string onto a built-in property type.
// Matching is exact; the second return reports whether it matched.
func ParsePropertyType(raw string) (PropertyType, bool) {
	t := PropertyType(raw)
	_, ok := defaultBasePrices[t]
	return t, ok
}

// DefaultBasePrice returns the built-in base price per m² for a
// property type, or the global fallback when the type is unknown.
func DefaultBasePrice(raw string) (float64, bool) {
	if price, ok := defaultBasePrices[PropertyType(raw)]; ok {
		return price, true
	}
	return FallbackBasePrice, false
}
