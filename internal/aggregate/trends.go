package aggregate

import "time"

// MarketTrends carries the seasonal pricing factor plus fixed market
// indicators. Growth and demand/supply indexes are documented constants,
// not derived values: the dataset is a static snapshot with no time axis to
// derive them from.
type MarketTrends struct {
	SeasonalFactor float64 `json:"seasonal_factor"`
	PriceGrowth    string  `json:"price_growth"`
	DemandIndex    int     `json:"demand_index"`
	SupplyIndex    int     `json:"supply_index"`
}

const (
	fixedPriceGrowth = "+12.5%"
	fixedDemandIndex = 85
	fixedSupplyIndex = 78
)

// SeasonalFactor returns the pricing multiplier for a month: summer peak,
// December holidays, off-season otherwise.
func SeasonalFactor(month time.Month) float64 {
	switch month {
	case time.June, time.July, time.August:
		return 1.2
	case time.December:
		return 1.1
	default:
		return 0.9
	}
}

// Trends returns the market trend block for the given point in time.
func Trends(now time.Time) MarketTrends {
	return MarketTrends{
		SeasonalFactor: SeasonalFactor(now.Month()),
		PriceGrowth:    fixedPriceGrowth,
		DemandIndex:    fixedDemandIndex,
		SupplyIndex:    fixedSupplyIndex,
	}
}
