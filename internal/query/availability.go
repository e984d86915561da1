package query

import (
	"time"

	"github.com/vistatrip/listings-backend-go/internal/models"
)

// IsAvailable reports whether some single availability period fully contains
// the requested range. Containment, not overlap: a request that starts before
// or ends after every period is rejected even when it partially overlaps one.
// An empty period list means the listing is unconstrained and always passes.
func IsAvailable(periods []models.Period, from, to time.Time) bool {
	if len(periods) == 0 {
		return true
	}
	for _, p := range periods {
		if p.Contains(from, to) {
			return true
		}
	}
	return false
}
