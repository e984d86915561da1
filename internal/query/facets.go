package query

import (
	"sort"

	"github.com/vistatrip/listings-backend-go/internal/models"
)

// ExtractFacets collects the distinct values present for each requested
// category, with occurrence counts, flattening multi-valued attributes.
// Values come back sorted lexicographically ascending so filter option
// lists render in a stable order derived purely from the data.
func ExtractFacets(items []models.Listing, categories []string) models.FacetSummary {
	summary := make(models.FacetSummary, len(categories))
	for _, category := range categories {
		counts := make(map[string]int)
		for _, item := range items {
			for _, value := range item.Attributes[category] {
				counts[value]++
			}
		}

		values := make([]models.FacetValue, 0, len(counts))
		for value, count := range counts {
			values = append(values, models.FacetValue{Value: value, Count: count})
		}
		sort.Slice(values, func(i, j int) bool {
			return values[i].Value < values[j].Value
		})
		summary[category] = values
	}
	return summary
}

// PriceBounds returns the span of prices in the candidate set, for deriving
// default slider bounds from data instead of hardcoding them. Zero bounds
// are returned for an empty set.
func PriceBounds(items []models.Listing) (min, max float64) {
	if len(items) == 0 {
		return 0, 0
	}
	min, max = items[0].Price, items[0].Price
	for _, item := range items[1:] {
		if item.Price < min {
			min = item.Price
		}
		if item.Price > max {
			max = item.Price
		}
	}
	return min, max
}
