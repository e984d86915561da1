package service

import (
	"github.com/vistatrip/listings-backend-go/internal/models"
	"github.com/vistatrip/listings-backend-go/internal/query"
	"github.com/vistatrip/listings-backend-go/internal/repository"
	"github.com/vistatrip/listings-backend-go/internal/spatial"
)

// facetCategories lists, per listing kind, which categorical dimensions the
// filter UI offers. Options themselves are always derived from data.
var facetCategories = map[string][]string{
	models.KindHotel:     {"starRating", "amenity", "accessibility"},
	models.KindHomestay:  {"type", "amenity"},
	models.KindRoom:      {"bedType", "view", "amenity"},
	models.KindActivity:  {"type", "duration"},
	models.KindTransport: {"type"},
	models.KindFood:      {"cuisine", "priceLevel"},
	models.KindShopping:  {"type"},
}

// Origin is an optional reference point for distance normalization
type Origin struct {
	Latitude  float64
	Longitude float64
}

// CatalogService runs catalog searches: it loads the candidate set, fills
// derived defaults, and delegates the actual narrowing and ordering to the
// pure query engine
type CatalogService struct {
	repo *repository.ListingRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo *repository.ListingRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Search returns the filtered, sorted listings of one kind together with
// facet metadata computed over the full candidate set
func (s *CatalogService) Search(kind string, q models.FilterQuery, origin *Origin) (query.Result, error) {
	items, err := s.repo.GetListings(kind, "")
	if err != nil {
		return query.Result{}, err
	}

	if origin != nil {
		items = withDistanceFrom(items, *origin)
	}

	// Default price bounds come from the data so no listing is silently
	// hidden by a hardcoded slider range
	if q.PriceMax == 0 {
		_, q.PriceMax = query.PriceBounds(items)
	}

	return query.Run(items, q, facetCategories[kind]), nil
}

// Facets returns the facet summary for one kind without applying any filter
func (s *CatalogService) Facets(kind string) (models.FacetSummary, error) {
	items, err := s.repo.GetListings(kind, "")
	if err != nil {
		return nil, err
	}
	return query.ExtractFacets(items, facetCategories[kind]), nil
}

// GetListingByID retrieves a single listing by ID
func (s *CatalogService) GetListingByID(id int64) (*models.Listing, error) {
	return s.repo.GetListingByID(id)
}

// CreateListing stores a partner-submitted listing and returns its ID
func (s *CatalogService) CreateListing(listing models.Listing) (int64, error) {
	return s.repo.InsertListing(listing)
}

// withDistanceFrom returns a copy of the listings with DistanceKm recomputed
// from the given origin. Listings without coordinates keep their stored value.
func withDistanceFrom(items []models.Listing, origin Origin) []models.Listing {
	out := append([]models.Listing(nil), items...)
	for i := range out {
		if out[i].Latitude == 0 && out[i].Longitude == 0 {
			continue
		}
		out[i].DistanceKm = spatial.DistanceKm(origin.Latitude, origin.Longitude, out[i].Latitude, out[i].Longitude)
	}
	return out
}
