package modelstesting

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/ozonwatch/price-watcher/internal/platform/models"
	"github.com/samber/lo"
)

// FakeSnapshot returns models.Snapshot with fake data.
func FakeSnapshot(ops ...func(s *models.Snapshot)) models.Snapshot {
	capturedAt := time.Now().UTC().Truncate(time.Second)
	snapshot := models.Snapshot{
		CapturedAt:      capturedAt,
		CapturedAtEpoch: capturedAt.Unix(),
		ProductCode:     faker.Word(),
		Price:           lo.ToPtr(fakePrice()),
		CardPrice:       lo.ToPtr(fakePrice()),
		OriginalPrice:   lo.ToPtr(fakePrice()),
		PriceChange:     models.PriceUnchanged,
		Rating:          lo.ToPtr(float64(rand.Intn(50)) / 10),
		RatingChange:    0,
		QuestionsCount:  rand.Intn(100),
		ReviewsCount:    rand.Intn(1000),
		Available:       true,
	}

	for _, op := range ops {
		op(&snapshot)
	}

	return snapshot
}

func fakePrice() float64 {
	return float64(rand.Intn(100000)) / 100
}
