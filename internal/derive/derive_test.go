package derive_test

import (
	"testing"

	"github.com/ozonwatch/price-watcher/internal/derive"
	"github.com/ozonwatch/price-watcher/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestUnitAvailable(t *testing.T) {
	assert.False(t, derive.Available(nil), "missing price should mean not available")
	assert.True(t, derive.Available(lo.ToPtr(999.0)), "resolved price should mean available")
	assert.True(t, derive.Available(lo.ToPtr(0.0)), "resolved zero price should still mean available")
}

func TestUnitPriceChange(t *testing.T) {
	tests := map[string]struct {
		price         *float64
		originalPrice *float64
		want          models.PriceChange
	}{
		"price below original": {
			price:         lo.ToPtr(900.0),
			originalPrice: lo.ToPtr(1000.0),
			want:          models.PriceDropped,
		},
		"price above original": {
			price:         lo.ToPtr(1100.0),
			originalPrice: lo.ToPtr(1000.0),
			want:          models.PriceRaised,
		},
		"equal prices": {
			price:         lo.ToPtr(1000.0),
			originalPrice: lo.ToPtr(1000.0),
			want:          models.PriceUnchanged,
		},
		"missing original price": {
			price:         lo.ToPtr(900.0),
			originalPrice: nil,
			want:          models.PriceUnchanged,
		},
		"missing price": {
			price:         nil,
			originalPrice: lo.ToPtr(1000.0),
			want:          models.PriceUnchanged,
		},
		"both missing": {
			price:         nil,
			originalPrice: nil,
			want:          models.PriceUnchanged,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, derive.PriceChange(tt.price, tt.originalPrice), "should classify price change")
		})
	}
}

func TestUnitRatingChange(t *testing.T) {
	assert.Zero(t, derive.RatingChange(lo.ToPtr(4.8)), "rating change should always be neutral")
	assert.Zero(t, derive.RatingChange(nil), "rating change should always be neutral")
}
