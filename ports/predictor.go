package ports

// FeatureCount is the dimensionality of the regression feature vector:
// [room type code, borough code, minimum nights, availability, host
// listings, latitude, longitude].
const FeatureCount = 7

// PricePredictor is the trained regression model consumed as a black box.
// Predict returns the estimated nightly price for a feature vector; any
// error is recovered by the caller via the statistical fallback path.
type PricePredictor interface {
	// Label is the human-readable accuracy description reported to clients.
	Label() string

	Predict(features []float64) (float64, error)
}
