package scoring

import (
	"nestmetrics/domain/listing"
	"nestmetrics/internal/errors"
)

// Price score band boundaries and the slope that keeps the schedule
// continuous where the very-good-deal band meets its neighbors
// (ratio 0.8 → 85, ratio 0.5 → 98).
const (
	priceScoreFloor   = 5.0
	priceScoreCeiling = 100.0
	dealBandSlope     = 13.0 / 0.3
)

// BookingResult is the desirability/urgency assessment for a candidate
// price in a borough.
type BookingResult struct {
	Score             float64
	PriceScore        float64
	AvailabilityScore float64
	PriceRatio        float64
	AvgAreaPrice      float64
	BestBookingTime   string
	Urgency           string
	Recommendation    string
}

// BookingScore computes the 0-100 booking desirability score for a price in
// a borough. Fails with UnknownArea when the borough has no listings.
func (e *Engine) BookingScore(price float64, borough listing.Borough) (BookingResult, error) {
	avgPrice, avgReviews, count := e.provider.BoroughPricing(borough)
	if count == 0 {
		return BookingResult{}, errors.UnknownArea(string(borough))
	}

	ratio := 1.0
	if avgPrice > 0 {
		ratio = price / avgPrice
	}

	priceScore := PriceScore(ratio)
	availabilityScore := AvailabilityScore(avgReviews, ratio)
	overall := priceScore*0.7 + availabilityScore*0.3

	result := BookingResult{
		Score:             overall,
		PriceScore:        priceScore,
		AvailabilityScore: availabilityScore,
		PriceRatio:        ratio,
		AvgAreaPrice:      avgPrice,
		BestBookingTime:   "Weekends",
		Urgency:           "Low",
		Recommendation:    "Consider alternatives",
	}
	if overall > 70 {
		result.BestBookingTime = "Weekdays"
	}
	switch {
	case overall > 80:
		result.Urgency = "High"
	case overall > 60:
		result.Urgency = "Medium"
	}
	switch {
	case overall > 75:
		result.Recommendation = "Book now!"
	case overall > 60:
		result.Recommendation = "Good deal"
	}
	return result, nil
}

// PriceScore maps a price ratio onto the piecewise-linear competitiveness
// schedule: lower ratio means a better deal and a higher score. Clamped to
// [5, 100].
func PriceScore(ratio float64) float64 {
	var score float64
	switch {
	case ratio <= 0.5: // super cheap
		score = 98
	case ratio <= 0.8: // very good deal
		score = 85 + (0.8-ratio)*dealBandSlope
	case ratio <= 1.0: // fair price
		score = 70 + (1.0-ratio)*75
	case ratio <= 1.2: // slightly expensive
		score = 50 - (ratio-1.0)*100
	case ratio <= 1.5: // expensive
		score = 30 - (ratio-1.2)*67
	default: // very expensive
		score = maxf(5, 10-(ratio-1.5)*10)
	}

	return maxf(priceScoreFloor, minf(priceScoreCeiling, score))
}

// AvailabilityScore proxies demand by review frequency, scaled by how the
// price compares to the area average.
func AvailabilityScore(avgMonthlyReviews, ratio float64) float64 {
	base := minf(avgMonthlyReviews*15, 90)
	switch {
	case ratio < 0.8: // cheap listings get booked fast
		return minf(base*1.2, 95)
	case ratio > 1.2: // expensive listings linger
		return base * 0.7
	default:
		return base
	}
}
