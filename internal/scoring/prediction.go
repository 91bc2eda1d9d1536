package scoring

import (
	"log"

	"nestmetrics/domain/listing"
	"nestmetrics/internal/aggregate"
	"nestmetrics/internal/errors"
)

// Statistical fallback parameters. Availability pivots on the half-year
// mark; host experience and minimum-stay contributions are capped so a
// single attribute cannot dominate the base price.
const (
	availabilityPivot   = 180.0
	availabilityWeight  = 0.1
	hostListingsCap     = 10
	hostListingsWeight  = 0.02
	minimumNightsCap    = 7
	minimumNightsWeight = 0.01
)

const statisticalAccuracyLabel = "Statistical Model: 80% accuracy (ML model fallback)"

// PredictionRequest carries the attributes of a hypothetical listing.
type PredictionRequest struct {
	RoomType      listing.RoomType
	Borough       listing.Borough
	MinimumNights int
	Availability  int
	HostListings  int
}

// Prediction is a predicted nightly price with its confidence interval.
type Prediction struct {
	Price         float64
	Lower         float64
	Upper         float64
	AccuracyLabel string
	SimilarCount  int
	// FromFallback is true when the statistical path produced the result,
	// either because no model is configured or because inference failed.
	FromFallback bool
}

// PredictPrice estimates the nightly price for the requested attributes.
// The model path is attempted first; on any inference failure the result
// comes from the statistical fallback instead of surfacing the error.
func (e *Engine) PredictPrice(req PredictionRequest) (Prediction, error) {
	comps := e.provider.Comparables(req.RoomType, req.Borough)

	if e.predictor != nil {
		pred, err := e.predictWithModel(req, comps)
		if err == nil {
			return pred, nil
		}
		log.Printf("Model prediction failed, using statistical fallback: %v",
			errors.ModelInference(err))
	}

	return e.predictStatistical(req, comps)
}

// predictWithModel encodes the request as a 7-feature vector and invokes
// the regression port. Missing geography is filled with dataset means.
func (e *Engine) predictWithModel(req PredictionRequest, comps aggregate.ComparableStats) (Prediction, error) {
	coords := e.provider.MeanCoordinates()
	features := []float64{
		float64(req.RoomType.Code()),
		float64(req.Borough.Code()),
		float64(req.MinimumNights),
		float64(req.Availability),
		float64(req.HostListings),
		coords.Lat,
		coords.Long,
	}

	predicted, err := e.predictor.Predict(features)
	if err != nil {
		return Prediction{}, err
	}

	lower := predicted * 0.8
	upper := predicted * 1.2
	if comps.Count > 0 {
		lower = maxf(predicted*0.85, comps.Percentile(10))
		upper = minf(predicted*1.15, comps.Percentile(90))
	}
	lower, upper = containPrediction(predicted, lower, upper)

	return Prediction{
		Price:         Round2(predicted),
		Lower:         Round2(lower),
		Upper:         Round2(upper),
		AccuracyLabel: e.predictor.Label(),
		SimilarCount:  comps.Count,
	}, nil
}

// predictStatistical takes the comparable median as the base price and
// applies the three multiplicative adjustment factors.
func (e *Engine) predictStatistical(req PredictionRequest, comps aggregate.ComparableStats) (Prediction, error) {
	if comps.Count == 0 {
		return Prediction{}, errors.NoComparableData("No similar listings found")
	}

	base := comps.Median()
	predicted := base *
		AvailabilityFactor(req.Availability) *
		HostFactor(req.HostListings) *
		NightsFactor(req.MinimumNights)

	lower := maxf(predicted*0.8, comps.Percentile(25))
	upper := minf(predicted*1.2, comps.Percentile(75))
	lower, upper = containPrediction(predicted, lower, upper)

	return Prediction{
		Price:         Round2(predicted),
		Lower:         Round2(lower),
		Upper:         Round2(upper),
		AccuracyLabel: statisticalAccuracyLabel,
		SimilarCount:  comps.Count,
		FromFallback:  true,
	}, nil
}

// AvailabilityFactor nudges above-median availability cheaper and
// below-median costlier, linearly.
func AvailabilityFactor(availability int) float64 {
	return 1.0 - (float64(availability)-availabilityPivot)/365.0*availabilityWeight
}

// HostFactor raises price slightly with host scale, capped at 10 extra
// listings.
func HostFactor(hostListings int) float64 {
	extra := hostListings - 1
	if extra > hostListingsCap {
		extra = hostListingsCap
	}
	return 1.0 + float64(extra)*hostListingsWeight
}

// NightsFactor depresses nightly price for long minimum stays, capped at 7
// extra nights.
func NightsFactor(minNights int) float64 {
	extra := minNights - 1
	if extra > minimumNightsCap {
		extra = minimumNightsCap
	}
	return 1.0 - float64(extra)*minimumNightsWeight
}

// containPrediction widens the interval so it always brackets the predicted
// price. Sparse comparable sets can otherwise push a percentile bound past
// the prediction.
func containPrediction(predicted, lower, upper float64) (float64, float64) {
	return minf(lower, predicted), maxf(upper, predicted)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
