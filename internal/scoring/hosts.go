package scoring

import (
	"fmt"
	"sort"

	"nestmetrics/internal/aggregate"
	"nestmetrics/internal/errors"
)

const maxRankedHosts = 15

// Performance score weights: listing volume, review frequency, and price
// level relative to the dataset average.
const (
	hostVolumeWeight  = 0.3
	hostReviewsWeight = 0.4
	hostPriceWeight   = 0.3
)

// HostRanking is one host's position in the performance ranking.
type HostRanking struct {
	HostName         string  `json:"host_name"`
	ListingsCount    int     `json:"listings_count"`
	AvgReviews       float64 `json:"avg_reviews"`
	TotalReviews     float64 `json:"total_reviews"`
	AvgPrice         float64 `json:"avg_price"`
	PriceRange       string  `json:"price_range"`
	PerformanceScore float64 `json:"performance_score"`
	Tier             string  `json:"tier"`
}

// RankHosts scores every host and returns the top performers in descending
// score order. The sort is stable: equal scores keep dataset order.
func (e *Engine) RankHosts() ([]HostRanking, error) {
	hosts := e.provider.ByHost()
	if len(hosts) == 0 {
		return nil, errors.DataUnavailable("no host data available")
	}
	datasetAvg := e.provider.DatasetAvgPrice()

	scored := make([]struct {
		aggregate.HostStats
		score float64
	}, len(hosts))
	for i, h := range hosts {
		scored[i].HostStats = h
		scored[i].score = PerformanceScore(h.Listings, h.AvgReviews, h.AvgPrice, datasetAvg)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > maxRankedHosts {
		scored = scored[:maxRankedHosts]
	}

	rankings := make([]HostRanking, len(scored))
	for i, s := range scored {
		rankings[i] = HostRanking{
			HostName:         s.HostName,
			ListingsCount:    s.Listings,
			AvgReviews:       Round2(s.AvgReviews),
			TotalReviews:     Round1(s.TotalReviews),
			AvgPrice:         Round2(s.AvgPrice),
			PriceRange:       fmt.Sprintf("$%.0f-$%.0f", s.MinPrice, s.MaxPrice),
			PerformanceScore: Round1(s.score),
			Tier:             PerformanceTier(s.score),
		}
	}
	return rankings, nil
}

// PerformanceScore blends listing volume, review frequency, and relative
// price level. A zero dataset average substitutes a price ratio of 1.
func PerformanceScore(listings int, avgReviews, avgPrice, datasetAvgPrice float64) float64 {
	priceRatio := 1.0
	if datasetAvgPrice > 0 {
		priceRatio = avgPrice / datasetAvgPrice
	}
	return float64(listings)*hostVolumeWeight +
		avgReviews*10*hostReviewsWeight +
		priceRatio*20*hostPriceWeight
}

// PerformanceTier labels a performance score.
func PerformanceTier(score float64) string {
	switch {
	case score > 50:
		return "Superhost"
	case score > 30:
		return "Plus"
	default:
		return "Standard"
	}
}
