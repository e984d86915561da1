package models

import "time"

// Listing kinds served by the catalog
const (
	KindHotel     = "hotel"
	KindHomestay  = "homestay"
	KindRoom      = "room"
	KindActivity  = "activity"
	KindTransport = "transport"
	KindFood      = "food"
	KindShopping  = "shopping"
)

// Period is an inclusive date range during which a listing may be booked
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether the requested range lies fully within the period
func (p Period) Contains(from, to time.Time) bool {
	return !p.From.After(from) && !to.After(p.To)
}

// Listing represents a bookable or browsable catalog entry
type Listing struct {
	ID          int64   `json:"id" db:"id"`
	Kind        string  `json:"kind" db:"kind"`
	Name        string  `json:"name" db:"name"`
	City        string  `json:"city,omitempty" db:"city"`
	District    string  `json:"district,omitempty" db:"district"`
	Description string  `json:"description,omitempty" db:"description"`
	Price       float64 `json:"price" db:"price"`              // Per night / per person, >= 0
	Rating      float64 `json:"rating" db:"rating"`            // 0.0 to 5.0
	SizeSqm     float64 `json:"sizeSqm,omitempty" db:"size_sqm"`
	DistanceKm  float64 `json:"distanceKm,omitempty" db:"distance_km"` // From city center
	Latitude    float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude   float64 `json:"longitude,omitempty" db:"longitude"`
	ImageURL    string  `json:"imageUrl,omitempty" db:"image_url"`

	// Promotion and trust flags
	Sponsored bool `json:"sponsored,omitempty" db:"sponsored"`
	Popular   bool `json:"popular,omitempty" db:"popular"`
	Verified  bool `json:"verified,omitempty" db:"verified"`

	// Categorical attributes, e.g. "type", "bedType", "starRating", "amenity".
	// Single-valued categories carry one element; amenities carry several.
	Attributes map[string][]string `json:"attributes,omitempty" db:"attributes"`

	// Bookable periods; empty means always available
	Availability []Period `json:"availability,omitempty"`

	CreatedAt string `json:"createdAt,omitempty" db:"created_at"`
}

// SearchFields returns the free-text fields matched by destination queries
func (l Listing) SearchFields() []string {
	return []string{l.Name, l.City, l.District, l.Description}
}

// Flag returns the named boolean flag; unknown names read as false
func (l Listing) Flag(name string) bool {
	switch name {
	case "sponsored":
		return l.Sponsored
	case "popular":
		return l.Popular
	case "verified":
		return l.Verified
	default:
		return false
	}
}

// Promoted reports whether the listing carries any promotional flag.
// Hotels use sponsored, rooms use popular; both rank first under the
// recommended sort.
func (l Listing) Promoted() bool {
	return l.Sponsored || l.Popular
}

// ListingsResponse represents a search response with facet metadata
type ListingsResponse struct {
	Data   []Listing    `json:"data"`
	Total  int          `json:"total"`
	Facets FacetSummary `json:"facets,omitempty"`
}
