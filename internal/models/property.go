package models

// PriceSource reports which price source the estimator resolved for a
// request, so callers can tell an override apart from a silent default.
type PriceSource string

const (
	// PriceSourceOverride means an uploaded override matched the exact
	// (province, property type) pair.
	PriceSourceOverride PriceSource = "override"

	// PriceSourceDefault means the property type's built-in base price
	// was used.
	PriceSourceDefault PriceSource = "default"

	// PriceSourceFallback means the property type itself was not
	// recognized and the global fallback price was used.
	PriceSourceFallback PriceSource = "fallback"
)

// PriceOverride is an administrator-supplied base price for a
// (province, property type) pair. It supersedes the built-in default
// for that exact pair.
type PriceOverride struct {
	Province        string  `json:"province"`
	PropertyType    string  `json:"property_type"`
	BasePricePerSqm float64 `json:"base_price_per_sqm"`
}

// EstimateRequest is the input to the quick estimate endpoint.
type EstimateRequest struct {
	PropertyType string   `json:"property_type"`
	Province     string   `json:"province"`
	Area         *float64 `json:"area" binding:"required"`
}

// EstimateResult is the outcome of a quick estimate. Region and
// Multiplier are only set when the province was found in the
// reference table.
type EstimateResult struct {
	EstimatedPrice float64     `json:"estimated_price"`
	PricePerSqm    float64     `json:"price_per_sqm"`
	Area           float64     `json:"area"`
	Province       string      `json:"province"`
	Region         string      `json:"region,omitempty"`
	Multiplier     *float64    `json:"multiplier,omitempty"`
	PriceSource    PriceSource `json:"price_source"`
}

// EvaluationRequest carries the free-form property details sent to the
// AI narrative evaluation.
type EvaluationRequest struct {
	PropertyType   string `json:"property_type"`
	Location       string `json:"location"`
	Area           string `json:"area"`
	Bedrooms       string `json:"bedrooms"`
	Bathrooms      string `json:"bathrooms"`
	Age            string `json:"age"`
	Condition      string `json:"condition"`
	AdditionalInfo string `json:"additional_info"`
}

// PropertyData is the subset of evaluation inputs echoed back to the
// client and rendered into the PDF report.
type PropertyData struct {
	PropertyType string `json:"property_type"`
	Location     string `json:"location"`
	Area         string `json:"area"`
	Bedrooms     string `json:"bedrooms"`
	Bathrooms    string `json:"bathrooms"`
	Age          string `json:"age"`
	Condition    string `json:"condition"`
}
