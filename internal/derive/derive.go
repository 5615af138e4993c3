// Package derive computes secondary signals from normalized snapshot values.
package derive

import (
	"github.com/ozonwatch/price-watcher/internal/platform/models"
)

// Available reports whether the listing is purchasable.
// A resolved price, even a zero one, implies a purchasable listing.
func Available(price *float64) bool {
	return price != nil
}

// PriceChange classifies the current price against the pre-discount price.
// When either value is missing, or both are equal, the class is PriceUnchanged.
func PriceChange(price, originalPrice *float64) models.PriceChange {
	if price == nil || originalPrice == nil {
		return models.PriceUnchanged
	}

	switch {
	case *price < *originalPrice:
		return models.PriceDropped
	case *price > *originalPrice:
		return models.PriceRaised
	default:
		return models.PriceUnchanged
	}
}

// RatingChange is reserved for comparison against a prior snapshot.
// No prior-value comparison is performed per cycle, so it always reports 0.
func RatingChange(_ *float64) int {
	return 0
}
