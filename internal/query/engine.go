// Package query implements the catalog's pure filter/sort/facet pipeline.
// Every function takes its inputs by value or read-only slice and allocates
// fresh output, so the engine is safe to re-run on every filter change from
// any number of call sites.
package query

import (
	"strings"

	"github.com/vistatrip/listings-backend-go/internal/models"
)

// Result bundles the ordered matches with facet metadata for the filter UI
type Result struct {
	Items  []models.Listing
	Facets models.FacetSummary
}

// Run filters and sorts the candidate set, and extracts facets over the
// unfiltered input so option counts are independent of the current filters
func Run(items []models.Listing, q models.FilterQuery, facetCategories []string) Result {
	return Result{
		Items:  Sort(Filter(items, q), q.Sort),
		Facets: ExtractFacets(items, facetCategories),
	}
}

// Filter returns the listings satisfying every active dimension of the
// query. Dimensions combine with AND; values within one multi-select
// dimension combine with OR. The input slice is never mutated.
func Filter(items []models.Listing, q models.FilterQuery) []models.Listing {
	needle := strings.ToLower(strings.TrimSpace(q.Destination))

	out := make([]models.Listing, 0, len(items))
	for _, item := range items {
		// Numeric checks first, string and slice scans after
		if item.Price < q.PriceMin || item.Price > q.PriceMax {
			continue
		}
		if item.Rating < q.MinRating {
			continue
		}
		if !matchesFlags(item, q.Flags) {
			continue
		}
		if !matchesSelections(item, q.Selections) {
			continue
		}
		if q.HasDateRange() && !IsAvailable(item.Availability, q.CheckIn, q.CheckOut) {
			continue
		}
		if needle != "" && !matchesDestination(item, needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesDestination(item models.Listing, needle string) bool {
	for _, field := range item.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesFlags(item models.Listing, flags map[string]bool) bool {
	for name, want := range flags {
		if item.Flag(name) != want {
			return false
		}
	}
	return true
}

// matchesSelections applies the any-of rule per category: the item passes a
// category when at least one of its values is among the selected ones. An
// empty selection set leaves the category unfiltered. An item with no value
// for an actively filtered category is excluded.
func matchesSelections(item models.Listing, selections map[string][]string) bool {
	for category, selected := range selections {
		if len(selected) == 0 {
			continue
		}
		if !anyValueSelected(item.Attributes[category], selected) {
			return false
		}
	}
	return true
}

func anyValueSelected(values, selected []string) bool {
	for _, v := range values {
		for _, s := range selected {
			if strings.EqualFold(v, s) {
				return true
			}
		}
	}
	return false
}
