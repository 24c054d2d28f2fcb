package model

// Language is the detected language of a chat utterance
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageMalay   Language = "ms"
)

// Furnishing represents the furnishing level filter
type Furnishing string

const (
	FurnishingUnspecified Furnishing = ""
	FurnishingFull        Furnishing = "full"
	FurnishingPartial     Furnishing = "partial"
)

// Intent represents the structured filter set extracted from a chat utterance.
// Zero values mean "unspecified"; any subset of fields may be populated.
type Intent struct {
	Location  string     `json:"location,omitempty"`
	Bedrooms  int        `json:"bedrooms,omitempty"`
	MaxPrice  float64    `json:"max_price,omitempty"`
	Furnished Furnishing `json:"furnished,omitempty"`
}

// HasFilters reports whether any field of the intent is populated
func (i Intent) HasFilters() bool {
	return i.Location != "" || i.Bedrooms > 0 || i.MaxPrice > 0 || i.Furnished != FurnishingUnspecified
}

// SearchPlan is the concrete data-fetch plan derived from an Intent.
// All predicates are conjunctive; availability is always enforced by the
// repository regardless of the plan.
type SearchPlan struct {
	Location    string     // partial, case-insensitive location match
	MinBedrooms int        // bedrooms >= N when > 0
	MaxPrice    float64    // price <= P when > 0
	Furnished   Furnishing // exact match when set
	Limit       int        // row cap, ordered ascending by price
}
