package scoring

import (
	"testing"

	"nestmetrics/domain/listing"
	"nestmetrics/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dealFixture(id int64, price float64, reviewsPerMonth float64) listing.Listing {
	l := fixtureListing(id, listing.RoomEntireHome, listing.BoroughBrooklyn, price)
	if reviewsPerMonth > 0 {
		l.ReviewsPerMo = &reviewsPerMonth
	}
	return l
}

func TestValueScore(t *testing.T) {
	// reviews*20 + discount from budget.
	assert.InDelta(t, 90.0, ValueScore(2, 100, 200), 1e-9)
	assert.InDelta(t, 25.0, ValueScore(0, 150, 200), 1e-9)
	assert.InDelta(t, 155.0, ValueScore(5, 90, 200), 1e-9)
}

func TestFindDealsRanksByValueScore(t *testing.T) {
	engine := newTestEngine(nil,
		dealFixture(1, 100, 2),
		dealFixture(2, 150, 0),
		dealFixture(3, 90, 5),
	)

	res, err := engine.FindDeals(DealRequest{
		RoomType:  listing.RoomEntireHome,
		Borough:   listing.BoroughBrooklyn,
		MaxBudget: 200,
		Guests:    2,
	})
	require.NoError(t, err)

	require.Equal(t, 3, res.DealsFound)
	require.Len(t, res.BestDeals, 3)
	assert.Equal(t, "Listing 3", res.BestDeals[0].Name)
	assert.Equal(t, "Listing 1", res.BestDeals[1].Name)
	assert.Equal(t, "Listing 2", res.BestDeals[2].Name)
	assert.InDelta(t, 155.0, res.BestDeals[0].ValueScore, 1e-9)

	// Average of 100, 150, 90 and savings against the budget.
	assert.InDelta(t, 113.33, res.AvgPrice, 0.01)
	assert.InDelta(t, 86.67, res.Savings, 0.01)
}

func TestFindDealsRespectsBudgetFilter(t *testing.T) {
	engine := newTestEngine(nil,
		dealFixture(1, 100, 2),
		dealFixture(2, 250, 9),
	)

	res, err := engine.FindDeals(DealRequest{
		RoomType:  listing.RoomEntireHome,
		Borough:   listing.BoroughBrooklyn,
		MaxBudget: 200,
	})
	require.NoError(t, err)

	require.Equal(t, 1, res.DealsFound)
	assert.Equal(t, "Listing 1", res.BestDeals[0].Name)
}

func TestFindDealsCapsResultCount(t *testing.T) {
	var ls []listing.Listing
	for i := int64(1); i <= 25; i++ {
		ls = append(ls, dealFixture(i, float64(50+i), 1))
	}
	engine := newTestEngine(nil, ls...)

	res, err := engine.FindDeals(DealRequest{
		RoomType:  listing.RoomEntireHome,
		Borough:   listing.BoroughBrooklyn,
		MaxBudget: 200,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, res.DealsFound)
	assert.Len(t, res.BestDeals, 10)
}

func TestFindDealsEmptyResultCarriesSuggestions(t *testing.T) {
	engine := newTestEngine(nil,
		dealFixture(1, 500, 2),
		fixtureListing(2, listing.RoomEntireHome, listing.BoroughQueens, 80),
	)

	res, err := engine.FindDeals(DealRequest{
		RoomType:  listing.RoomEntireHome,
		Borough:   listing.BoroughBrooklyn,
		MaxBudget: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, res.DealsFound)
	assert.Empty(t, res.BestDeals)
	assert.NotEmpty(t, res.NearbyAreas)
	assert.Greater(t, res.BudgetRecommendation, 0.0)
}

func TestFindDealsInvalidBudget(t *testing.T) {
	engine := newTestEngine(nil, dealFixture(1, 100, 2))

	_, err := engine.FindDeals(DealRequest{
		RoomType:  listing.RoomEntireHome,
		Borough:   listing.BoroughBrooklyn,
		MaxBudget: 0,
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestAlternativeBoroughs(t *testing.T) {
	assert.Equal(t,
		[]listing.Borough{listing.BoroughBrooklyn, listing.BoroughQueens},
		AlternativeBoroughs(listing.BoroughManhattan))
	assert.Equal(t,
		[]listing.Borough{listing.BoroughManhattan},
		AlternativeBoroughs(listing.BoroughBronx))
}
