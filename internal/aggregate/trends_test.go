package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonalFactor(t *testing.T) {
	assert.InDelta(t, 1.2, SeasonalFactor(time.June), 1e-9)
	assert.InDelta(t, 1.2, SeasonalFactor(time.July), 1e-9)
	assert.InDelta(t, 1.2, SeasonalFactor(time.August), 1e-9)
	assert.InDelta(t, 1.1, SeasonalFactor(time.December), 1e-9)
	assert.InDelta(t, 0.9, SeasonalFactor(time.January), 1e-9)
	assert.InDelta(t, 0.9, SeasonalFactor(time.October), 1e-9)
}

func TestTrendsBlock(t *testing.T) {
	tr := Trends(time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 1.2, tr.SeasonalFactor, 1e-9)
	assert.Equal(t, "+12.5%", tr.PriceGrowth)
	assert.Equal(t, 85, tr.DemandIndex)
	assert.Equal(t, 78, tr.SupplyIndex)
}
