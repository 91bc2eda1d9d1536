package scoring

import (
	"sort"

	"nestmetrics/domain/listing"
	"nestmetrics/internal/aggregate"
	"nestmetrics/internal/errors"
)

// TravelInsights summarizes a destination for a traveler with a nightly
// budget.
type TravelInsights struct {
	TotalOptions  int
	WithinBudget  int
	AvgPrice      float64
	BudgetSavings float64
	Availability  string
	PriceQ25      float64
	PriceQ75      float64
	SweetSpot     float64
	RoomCounts    map[listing.RoomType]int
}

// TravelInsightsFor computes destination insights for a borough and budget.
func (e *Engine) TravelInsightsFor(borough listing.Borough, budget float64) (TravelInsights, error) {
	area := e.provider.Snapshot().ByBorough(borough)
	if len(area) == 0 {
		return TravelInsights{}, errors.UnknownArea(string(borough))
	}

	prices := listing.Prices(area)
	sort.Float64s(prices)
	avg := 0.0
	for _, p := range prices {
		avg += p
	}
	avg /= float64(len(prices))

	within := 0
	roomCounts := make(map[listing.RoomType]int)
	for _, l := range area {
		if l.Price <= budget {
			within++
		}
		roomCounts[l.RoomType]++
	}

	savings := 0.0
	if avg > budget {
		savings = avg - budget
	}

	return TravelInsights{
		TotalOptions:  len(area),
		WithinBudget:  within,
		AvgPrice:      Round2(avg),
		BudgetSavings: Round2(savings),
		Availability:  budgetAvailability(budget, avg),
		PriceQ25:      Round2(aggregate.Percentile(prices, 25)),
		PriceQ75:      Round2(aggregate.Percentile(prices, 75)),
		SweetSpot:     Round2(aggregate.Percentile(prices, 40)),
		RoomCounts:    roomCounts,
	}, nil
}

// budgetAvailability labels how far a budget stretches against the area
// average.
func budgetAvailability(budget, avgPrice float64) string {
	ratio := 1.0
	if avgPrice > 0 {
		ratio = budget / avgPrice
	}
	switch {
	case ratio >= 1.5:
		return "High"
	case ratio >= 1.0:
		return "Medium"
	case ratio >= 0.7:
		return "Limited"
	default:
		return "Very Limited"
	}
}

// OptimizerRequest describes a trip to plan around a total budget.
type OptimizerRequest struct {
	Borough    listing.Borough
	Budget     float64
	Guests     int
	TripLength int
}

// OptimizerPick is one recommended listing.
type OptimizerPick struct {
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	ReviewsPerMonth *float64 `json:"reviews_per_month,omitempty"`
}

// OptimizerResult is the booking strategy for a trip.
type OptimizerResult struct {
	DailyBudget  float64
	TotalBudget  float64
	OptionsFound int
	AvgSavings   float64
	BestValue    []OptimizerPick
	BudgetPicks  []OptimizerPick
	Alternatives []listing.Borough
}

// OptimizeBooking finds listings that fit the party size and daily budget
// and ranks value and budget picks.
func (e *Engine) OptimizeBooking(req OptimizerRequest) (OptimizerResult, error) {
	if req.TripLength < 1 {
		return OptimizerResult{}, errors.InvalidInput("trip_length must be at least 1")
	}

	area := e.provider.Snapshot().Filter(func(l listing.Listing) bool {
		return l.Borough == req.Borough && l.Accommodates >= req.Guests
	})
	if len(area) == 0 {
		return OptimizerResult{}, errors.NoComparableData("No suitable options found")
	}

	dailyBudget := req.Budget / float64(req.TripLength)
	var suitable []listing.Listing
	for _, l := range area {
		if l.Price <= dailyBudget {
			suitable = append(suitable, l)
		}
	}

	result := OptimizerResult{
		DailyBudget:  Round2(dailyBudget),
		TotalBudget:  req.Budget,
		OptionsFound: len(suitable),
		Alternatives: AlternativeBoroughs(req.Borough),
	}
	if len(suitable) == 0 {
		return result, nil
	}

	avg := 0.0
	for _, l := range suitable {
		avg += l.Price
	}
	avg /= float64(len(suitable))
	result.AvgSavings = Round2(dailyBudget - avg)

	byReviews := append([]listing.Listing(nil), suitable...)
	sort.SliceStable(byReviews, func(i, j int) bool {
		return byReviews[i].MonthlyReviews() > byReviews[j].MonthlyReviews()
	})
	for _, l := range topN(byReviews, 3) {
		result.BestValue = append(result.BestValue, OptimizerPick{
			Name: l.Name, Price: l.Price, ReviewsPerMonth: l.ReviewsPerMo,
		})
	}

	byPrice := append([]listing.Listing(nil), suitable...)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return byPrice[i].Price < byPrice[j].Price
	})
	for _, l := range topN(byPrice, 3) {
		result.BudgetPicks = append(result.BudgetPicks, OptimizerPick{
			Name: l.Name, Price: l.Price,
		})
	}

	return result, nil
}

func topN(ls []listing.Listing, n int) []listing.Listing {
	if len(ls) > n {
		return ls[:n]
	}
	return ls
}
