package aggregate

import (
	"context"
	"sort"

	"nestmetrics/domain/listing"
	"nestmetrics/internal/errors"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// Default coordinates when the dataset carries no geography (midtown
// Manhattan, matching the model's training defaults).
const (
	defaultLat  = 40.7589
	defaultLong = -73.9851
)

// Provider computes grouped summary statistics over an immutable snapshot.
// Every method is a pure read; nothing is cached between requests.
type Provider struct {
	snap *listing.Snapshot
}

// NewProvider creates an aggregate provider over a snapshot
func NewProvider(snap *listing.Snapshot) *Provider {
	return &Provider{snap: snap}
}

// Snapshot exposes the underlying immutable snapshot for raw listing
// queries that bypass aggregation
func (p *Provider) Snapshot() *listing.Snapshot {
	return p.snap
}

// Overview computes the dataset-wide summary
func (p *Provider) Overview() (Overview, error) {
	prices := listing.PlausiblePrices(p.snap.All())
	if len(prices) == 0 {
		return Overview{}, errors.DataUnavailable("no listings with plausible prices")
	}

	active := 0
	reviewSum := 0.0
	for _, l := range p.snap.All() {
		if l.MonthlyReviews() > 0 {
			active++
		}
		reviewSum += l.MonthlyReviews()
	}

	return Overview{
		AvgPrice:       meanOf(prices),
		MedianPrice:    medianOf(prices),
		AvgReviews:     reviewSum / float64(p.snap.Len()),
		TotalListings:  p.snap.Len(),
		ActiveListings: active,
	}, nil
}

// PriceDistribution computes the quartile summary of plausible prices
func (p *Provider) PriceDistribution() (PriceDistribution, error) {
	prices := listing.PlausiblePrices(p.snap.All())
	if len(prices) == 0 {
		return PriceDistribution{}, errors.DataUnavailable("no listings with plausible prices")
	}
	return PriceDistribution{
		Q25:    Percentile(prices, 25),
		Median: medianOf(prices),
		Q75:    Percentile(prices, 75),
		Mean:   meanOf(prices),
	}, nil
}

// ByBorough computes per-borough stats concurrently. Boroughs with no
// listings are omitted; order follows the canonical borough list.
func (p *Provider) ByBorough(ctx context.Context) ([]BoroughStats, error) {
	results := make([]BoroughStats, len(listing.Boroughs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, borough := range listing.Boroughs {
		i, borough := i, borough
		g.Go(func() error {
			group := p.snap.ByBorough(borough)
			if len(group) == 0 {
				return nil
			}
			prices := listing.PlausiblePrices(group)
			availSum := 0.0
			for _, l := range group {
				availSum += float64(l.Availability)
			}
			results[i] = BoroughStats{
				Borough:         borough,
				AvgPrice:        meanOf(prices),
				MedianPrice:     medianOf(prices),
				Listings:        len(group),
				AvgReviews:      filledReviewMean(group),
				AvgAvailability: availSum / float64(len(group)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []BoroughStats
	for _, r := range results {
		if r.Listings > 0 {
			out = append(out, r)
		}
	}
	return out, nil
}

// ByRoomType computes per-room-type stats
func (p *Provider) ByRoomType(ctx context.Context) ([]RoomTypeStats, error) {
	results := make([]RoomTypeStats, len(listing.RoomTypes))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(3)

	for i, roomType := range listing.RoomTypes {
		i, roomType := i, roomType
		g.Go(func() error {
			group := p.snap.ByRoomType(roomType)
			if len(group) == 0 {
				return nil
			}
			results[i] = RoomTypeStats{
				RoomType:   roomType,
				AvgPrice:   meanOf(listing.PlausiblePrices(group)),
				Listings:   len(group),
				AvgReviews: filledReviewMean(group),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []RoomTypeStats
	for _, r := range results {
		if r.Listings > 0 {
			out = append(out, r)
		}
	}
	return out, nil
}

// ByHost aggregates listings per host, preserving first-appearance order.
// Review averages skip absent values; a host with no review data gets 0.
func (p *Provider) ByHost() []HostStats {
	index := make(map[string]int)
	var hosts []HostStats
	reviewCounts := make(map[string]int)

	for _, l := range p.snap.All() {
		if l.HostName == "" {
			continue
		}
		i, seen := index[l.HostName]
		if !seen {
			i = len(hosts)
			index[l.HostName] = i
			hosts = append(hosts, HostStats{
				HostName: l.HostName,
				MinPrice: l.Price,
				MaxPrice: l.Price,
			})
		}
		h := &hosts[i]
		h.Listings++
		h.AvgPrice += l.Price
		if l.Price < h.MinPrice {
			h.MinPrice = l.Price
		}
		if l.Price > h.MaxPrice {
			h.MaxPrice = l.Price
		}
		h.ReviewCount += l.NumberReviews
		if l.HasReviews() {
			h.TotalReviews += l.MonthlyReviews()
			reviewCounts[l.HostName]++
		}
	}

	for i := range hosts {
		h := &hosts[i]
		h.AvgPrice /= float64(h.Listings)
		if n := reviewCounts[h.HostName]; n > 0 {
			h.AvgReviews = h.TotalReviews / float64(n)
		}
	}
	return hosts
}

// Comparables returns the plausible prices of listings matching the room
// type and borough
func (p *Provider) Comparables(rt listing.RoomType, b listing.Borough) ComparableStats {
	group := p.snap.Comparables(rt, b)
	prices := listing.PlausiblePrices(group)
	sort.Float64s(prices)
	return ComparableStats{Count: len(prices), Prices: prices}
}

// Median returns the median comparable price
func (c ComparableStats) Median() float64 {
	return medianOf(c.Prices)
}

// Percentile returns the given comparable price percentile
func (c ComparableStats) Percentile(pct float64) float64 {
	return Percentile(c.Prices, pct)
}

// BoroughPricing returns the average plausible price and filled review mean
// for one borough, plus the listing count
func (p *Provider) BoroughPricing(b listing.Borough) (avgPrice, avgReviews float64, count int) {
	group := p.snap.ByBorough(b)
	if len(group) == 0 {
		return 0, 0, 0
	}
	return meanOf(listing.PlausiblePrices(group)), filledReviewMean(group), len(group)
}

// DatasetAvgPrice returns the mean plausible price across the dataset
func (p *Provider) DatasetAvgPrice() float64 {
	return meanOf(listing.PlausiblePrices(p.snap.All()))
}

// MedianPriceForRoomType returns the median plausible price for a room type
// across the whole dataset, used for budget recommendations
func (p *Provider) MedianPriceForRoomType(rt listing.RoomType) float64 {
	return medianOf(listing.PlausiblePrices(p.snap.ByRoomType(rt)))
}

// VerifiedPricing compares verified vs unverified average prices. Empty
// groups fall back to market-typical constants, matching the historical
// behavior of this report.
func (p *Provider) VerifiedPricing() VerifiedPricing {
	var verified, unverified []float64
	for _, l := range p.snap.All() {
		if !listing.PlausiblePrice(l.Price) {
			continue
		}
		if l.HostVerified {
			verified = append(verified, l.Price)
		} else {
			unverified = append(unverified, l.Price)
		}
	}

	vp := VerifiedPricing{VerifiedAvgPrice: 180.0, UnverifiedAvgPrice: 120.0}
	if len(verified) > 0 {
		vp.VerifiedAvgPrice = meanOf(verified)
	}
	if len(unverified) > 0 {
		vp.UnverifiedAvgPrice = meanOf(unverified)
	}
	return vp
}

// Patterns summarizes instant-booking share and minimum-nights average
func (p *Provider) Patterns() BookingPatterns {
	if p.snap.Len() == 0 {
		return BookingPatterns{}
	}
	instant := 0
	nightsSum := 0.0
	for _, l := range p.snap.All() {
		if l.InstantBook {
			instant++
		}
		nightsSum += float64(l.MinimumNights)
	}
	return BookingPatterns{
		InstantBookableRatio: float64(instant) / float64(p.snap.Len()) * 100,
		AvgMinimumNights:     nightsSum / float64(p.snap.Len()),
	}
}

// Tiers buckets plausible prices into premium/standard/budget by the
// 20th/80th percentiles
func (p *Provider) Tiers() PerformanceTiers {
	prices := listing.PlausiblePrices(p.snap.All())
	if len(prices) == 0 {
		return PerformanceTiers{}
	}
	p20 := Percentile(prices, 20)
	p80 := Percentile(prices, 80)

	tiers := PerformanceTiers{}
	for _, price := range prices {
		switch {
		case price > p80:
			tiers.Premium++
		case price < p20:
			tiers.Budget++
		default:
			tiers.Standard++
		}
	}
	return tiers
}

// MeanCoordinates returns the dataset mean location, defaulting to midtown
// Manhattan when no listing carries geography
func (p *Provider) MeanCoordinates() Coordinates {
	var latSum, longSum float64
	var latN, longN int
	for _, l := range p.snap.All() {
		if l.Lat != nil {
			latSum += *l.Lat
			latN++
		}
		if l.Long != nil {
			longSum += *l.Long
			longN++
		}
	}

	coords := Coordinates{Lat: defaultLat, Long: defaultLong}
	if latN > 0 {
		coords.Lat = latSum / float64(latN)
	}
	if longN > 0 {
		coords.Long = longSum / float64(longN)
	}
	return coords
}

// filledReviewMean averages monthly reviews with absent values treated as 0
func filledReviewMean(group []listing.Listing) float64 {
	if len(group) == 0 {
		return 0
	}
	sum := 0.0
	for _, l := range group {
		sum += l.MonthlyReviews()
	}
	return sum / float64(len(group))
}

// Empty-safe wrappers around montanaflynn/stats.
func meanOf(data []float64) float64 {
	v, err := stats.Mean(data)
	if err != nil {
		return 0
	}
	return v
}

func medianOf(data []float64) float64 {
	v, err := stats.Median(data)
	if err != nil {
		return 0
	}
	return v
}

// Percentile computes a price percentile. montanaflynn rejects requests
// whose rank index lands at or below the first element (low percentiles of
// small sets); those fall back to linear interpolation between the closest
// ranks so sparse sets still yield a real value.
func Percentile(data []float64, pct float64) float64 {
	if len(data) == 0 {
		return 0
	}
	if v, err := stats.Percentile(data, pct); err == nil {
		return v
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	return interpolateRank(sorted, pct/100)
}

// interpolateRank evaluates the pandas-style linear-interpolation quantile
// over a pre-sorted slice.
func interpolateRank(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(pos)
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (pos-float64(lo))*(sorted[lo+1]-sorted[lo])
}
