package models

import "time"

// PriceChange classifies the current price against the pre-discount price.
type PriceChange string

// Price change classes.
const (
	PriceUnchanged PriceChange = "unchanged"
	PriceDropped   PriceChange = "dropped"
	PriceRaised    PriceChange = "raised"
)

// Snapshot is the latest observation of a single product page.
// The store keeps at most one Snapshot per ProductCode.
type Snapshot struct {
	ID              int
	CapturedAt      time.Time
	CapturedAtEpoch int64
	ProductCode     string
	Price           *float64
	CardPrice       *float64
	OriginalPrice   *float64
	PriceChange     PriceChange
	Rating          *float64
	RatingChange    int
	QuestionsCount  int
	ReviewsCount    int
	Available       bool
}
