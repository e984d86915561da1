package query

import (
	"sort"
	"strings"

	"github.com/vistatrip/listings-backend-go/internal/models"
)

// Sort returns a sorted copy of the listings under the named policy.
// Sorting is stable: listings that compare equal keep their input order,
// so equally-ranked cards do not jump between re-filters.
func Sort(in []models.Listing, key models.SortKey) []models.Listing {
	out := append([]models.Listing(nil), in...)
	if len(out) <= 1 {
		return out
	}

	key = normalizeSortKey(key)
	sort.SliceStable(out, func(i, j int) bool {
		return compareListings(out[i], out[j], key) < 0
	})
	return out
}

func normalizeSortKey(key models.SortKey) models.SortKey {
	switch models.SortKey(strings.ToLower(strings.TrimSpace(string(key)))) {
	case models.SortPriceAsc:
		return models.SortPriceAsc
	case models.SortPriceDesc:
		return models.SortPriceDesc
	case models.SortRatingDesc:
		return models.SortRatingDesc
	case models.SortSizeDesc:
		return models.SortSizeDesc
	case models.SortDistanceAsc:
		return models.SortDistanceAsc
	default:
		return models.SortRecommended
	}
}

func compareListings(a, b models.Listing, key models.SortKey) int {
	switch key {
	case models.SortPriceAsc:
		return compareFloat(a.Price, b.Price)
	case models.SortPriceDesc:
		return compareFloat(b.Price, a.Price)
	case models.SortRatingDesc:
		return compareFloat(b.Rating, a.Rating)
	case models.SortSizeDesc:
		return compareFloat(b.SizeSqm, a.SizeSqm)
	case models.SortDistanceAsc:
		return compareFloat(a.DistanceKm, b.DistanceKm)
	default:
		// Recommended: promoted listings rank before non-promoted ones
		// regardless of rating, then rating descending within each group
		if a.Promoted() != b.Promoted() {
			if a.Promoted() {
				return -1
			}
			return 1
		}
		return compareFloat(b.Rating, a.Rating)
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
