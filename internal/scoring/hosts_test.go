package scoring

import (
	"testing"

	"nestmetrics/domain/listing"
	"nestmetrics/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hostFixture(id int64, host string, price float64, reviewsPerMonth float64) listing.Listing {
	l := fixtureListing(id, listing.RoomEntireHome, listing.BoroughManhattan, price)
	l.HostName = host
	if reviewsPerMonth > 0 {
		l.ReviewsPerMo = &reviewsPerMonth
	}
	return l
}

func TestPerformanceScore(t *testing.T) {
	// 2 listings, 3 avg reviews, price at the dataset average:
	// 2*0.3 + 3*10*0.4 + 1*20*0.3 = 18.6.
	assert.InDelta(t, 18.6, PerformanceScore(2, 3, 100, 100), 1e-9)

	// A zero dataset average substitutes a ratio of 1.
	assert.InDelta(t, 18.6, PerformanceScore(2, 3, 100, 0), 1e-9)
}

func TestPerformanceTier(t *testing.T) {
	assert.Equal(t, "Superhost", PerformanceTier(50.1))
	assert.Equal(t, "Plus", PerformanceTier(50))
	assert.Equal(t, "Plus", PerformanceTier(30.1))
	assert.Equal(t, "Standard", PerformanceTier(30))
	assert.Equal(t, "Standard", PerformanceTier(0))
}

func TestRankHostsOrdersByScore(t *testing.T) {
	engine := newTestEngine(nil,
		hostFixture(1, "Alice", 100, 1),
		hostFixture(2, "Bob", 100, 8),
		hostFixture(3, "Bob", 100, 8),
		hostFixture(4, "Carol", 100, 3),
	)

	rankings, err := engine.RankHosts()
	require.NoError(t, err)
	require.Len(t, rankings, 3)

	assert.Equal(t, "Bob", rankings[0].HostName)
	assert.Equal(t, 2, rankings[0].ListingsCount)
	assert.Equal(t, "Carol", rankings[1].HostName)
	assert.Equal(t, "Alice", rankings[2].HostName)

	for i := 1; i < len(rankings); i++ {
		assert.GreaterOrEqual(t,
			rankings[i-1].PerformanceScore, rankings[i].PerformanceScore)
	}
}

func TestRankHostsTiesKeepDatasetOrder(t *testing.T) {
	engine := newTestEngine(nil,
		hostFixture(1, "First", 100, 2),
		hostFixture(2, "Second", 100, 2),
		hostFixture(3, "Third", 100, 2),
	)

	rankings, err := engine.RankHosts()
	require.NoError(t, err)
	require.Len(t, rankings, 3)

	assert.Equal(t, "First", rankings[0].HostName)
	assert.Equal(t, "Second", rankings[1].HostName)
	assert.Equal(t, "Third", rankings[2].HostName)
}

func TestRankHostsCapsAtFifteen(t *testing.T) {
	var ls []listing.Listing
	for i := int64(1); i <= 30; i++ {
		ls = append(ls, hostFixture(i, string(rune('A'+i)), 100, float64(i)))
	}
	engine := newTestEngine(nil, ls...)

	rankings, err := engine.RankHosts()
	require.NoError(t, err)
	assert.Len(t, rankings, 15)
}

func TestRankHostsPriceRangeFormat(t *testing.T) {
	engine := newTestEngine(nil,
		hostFixture(1, "Alice", 90, 1),
		hostFixture(2, "Alice", 210, 1),
	)

	rankings, err := engine.RankHosts()
	require.NoError(t, err)
	require.Len(t, rankings, 1)
	assert.Equal(t, "$90-$210", rankings[0].PriceRange)
	assert.InDelta(t, 150.0, rankings[0].AvgPrice, 1e-9)
}

func TestRankHostsEmptyDataset(t *testing.T) {
	engine := newTestEngine(nil)

	_, err := engine.RankHosts()
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataUnavailable, errors.GetCode(err))
}
