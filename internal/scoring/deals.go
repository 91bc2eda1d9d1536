package scoring

import (
	"sort"

	"nestmetrics/domain/listing"
	"nestmetrics/internal/errors"
)

const maxDealResults = 10

// DealRequest filters the candidate set for deal ranking.
type DealRequest struct {
	RoomType  listing.RoomType
	Borough   listing.Borough
	MaxBudget float64
	Guests    int
}

// Deal is one ranked candidate.
type Deal struct {
	Name            string
	Price           float64
	ReviewsPerMonth float64
	ValueScore      float64
}

// DealResult is the ranked deal set, or a zero-result shape with
// suggestions when nothing matched.
type DealResult struct {
	DealsFound int
	BestDeals  []Deal
	AvgPrice   float64
	Savings    float64

	// Populated only when DealsFound is 0.
	NearbyAreas          []listing.Borough
	BudgetRecommendation float64
}

// FindDeals ranks listings matching the filter by value score and returns
// the top candidates. An empty candidate set is not an error: the result
// carries alternative boroughs and a budget recommendation instead.
func (e *Engine) FindDeals(req DealRequest) (DealResult, error) {
	if req.MaxBudget <= 0 {
		return DealResult{}, errors.InvalidInput("max_budget must be positive")
	}

	candidates := e.provider.Snapshot().Filter(func(l listing.Listing) bool {
		return l.RoomType == req.RoomType &&
			l.Borough == req.Borough &&
			l.Price <= req.MaxBudget
	})

	if len(candidates) == 0 {
		return DealResult{
			NearbyAreas:          AlternativeBoroughs(req.Borough),
			BudgetRecommendation: Round2(e.provider.MedianPriceForRoomType(req.RoomType)),
		}, nil
	}

	deals := make([]Deal, len(candidates))
	for i, l := range candidates {
		deals[i] = Deal{
			Name:            l.Name,
			Price:           l.Price,
			ReviewsPerMonth: l.MonthlyReviews(),
			ValueScore:      ValueScore(l.MonthlyReviews(), l.Price, req.MaxBudget),
		}
	}
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].ValueScore > deals[j].ValueScore
	})
	if len(deals) > maxDealResults {
		deals = deals[:maxDealResults]
	}

	avg := 0.0
	for _, l := range candidates {
		avg += l.Price
	}
	avg /= float64(len(candidates))

	return DealResult{
		DealsFound: len(candidates),
		BestDeals:  deals,
		AvgPrice:   Round2(avg),
		Savings:    Round2(req.MaxBudget - avg),
	}, nil
}

// ValueScore blends review frequency with discount-from-budget. Missing
// review counts are passed in as 0.
func ValueScore(reviewsPerMonth, price, maxBudget float64) float64 {
	return reviewsPerMonth*20 + (100 - price/maxBudget*100)
}

// AlternativeBoroughs suggests where to look when a borough turns up empty.
func AlternativeBoroughs(b listing.Borough) []listing.Borough {
	if b == listing.BoroughManhattan {
		return []listing.Borough{listing.BoroughBrooklyn, listing.BoroughQueens}
	}
	return []listing.Borough{listing.BoroughManhattan}
}
