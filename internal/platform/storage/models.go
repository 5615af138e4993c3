package storage

import (
	"github.com/ozonwatch/price-watcher/internal/platform/models"

	pgmodels "github.com/ozonwatch/price-watcher/internal/platform/storage/gen/postgres/public/model"
)

func toDBSnapshot(snapshot *models.Snapshot) *pgmodels.PriceSnapshots {
	return &pgmodels.PriceSnapshots{
		ID:              int32(snapshot.ID),
		CapturedAt:      snapshot.CapturedAt,
		CapturedAtEpoch: snapshot.CapturedAtEpoch,
		ProductCode:     snapshot.ProductCode,
		Price:           snapshot.Price,
		CardPrice:       snapshot.CardPrice,
		OriginalPrice:   snapshot.OriginalPrice,
		PriceChange:     string(snapshot.PriceChange),
		Rating:          snapshot.Rating,
		RatingChange:    int32(snapshot.RatingChange),
		QuestionsCount:  int32(snapshot.QuestionsCount),
		ReviewsCount:    int32(snapshot.ReviewsCount),
		Available:       snapshot.Available,
	}
}

// FromDBSnapshot converts a postgres snapshot row into the domain model.
func FromDBSnapshot(row *pgmodels.PriceSnapshots) models.Snapshot {
	return models.Snapshot{
		ID:              int(row.ID),
		CapturedAt:      row.CapturedAt,
		CapturedAtEpoch: row.CapturedAtEpoch,
		ProductCode:     row.ProductCode,
		Price:           row.Price,
		CardPrice:       row.CardPrice,
		OriginalPrice:   row.OriginalPrice,
		PriceChange:     models.PriceChange(row.PriceChange),
		Rating:          row.Rating,
		RatingChange:    int(row.RatingChange),
		QuestionsCount:  int(row.QuestionsCount),
		ReviewsCount:    int(row.ReviewsCount),
		Available:       row.Available,
	}
}
