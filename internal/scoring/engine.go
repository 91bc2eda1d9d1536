package scoring

import (
	"math"

	"nestmetrics/internal/aggregate"
	"nestmetrics/ports"
)

// Engine turns listing attributes plus dataset aggregates into predicted
// prices and composite scores. All methods are pure reads over the snapshot;
// the predictor may be nil when no trained model is configured.
type Engine struct {
	provider  *aggregate.Provider
	predictor ports.PricePredictor
}

// NewEngine creates a scoring engine
func NewEngine(provider *aggregate.Provider, predictor ports.PricePredictor) *Engine {
	return &Engine{provider: provider, predictor: predictor}
}

// Round2 rounds a monetary value to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds a score to 1 decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
