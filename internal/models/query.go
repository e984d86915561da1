package models

import "time"

// SortKey selects a named ordering policy
type SortKey string

const (
	SortRecommended  SortKey = "recommended" // Promoted first, then rating desc
	SortPriceAsc     SortKey = "price_asc"
	SortPriceDesc    SortKey = "price_desc"
	SortRatingDesc   SortKey = "rating_desc"
	SortSizeDesc     SortKey = "size_desc"
	SortDistanceAsc  SortKey = "distance_asc"
)

// FilterQuery holds every filter dimension for one catalog search.
// An absent or empty dimension is always a no-op, never an exclude-all.
type FilterQuery struct {
	Destination string    // Case-insensitive substring over SearchFields
	CheckIn     time.Time // Zero value means no date filter
	CheckOut    time.Time
	PriceMin    float64
	PriceMax    float64
	Selections  map[string][]string // Category name -> accepted values (any-of)
	Flags       map[string]bool     // Flag name -> required value
	MinRating   float64
	Sort        SortKey
}

// HasDateRange reports whether both dates are set; with only one set the
// availability dimension is skipped entirely
func (q FilterQuery) HasDateRange() bool {
	return !q.CheckIn.IsZero() && !q.CheckOut.IsZero()
}

// FacetValue is one observed categorical value with its occurrence count
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetSummary maps category names to their observed values and counts,
// computed over the full candidate set so option chips show "how many if
// you also picked this", not "how many remain"
type FacetSummary map[string][]FacetValue
