package model

import (
	"encoding/json"
	"fmt"
	"os"

	"nestmetrics/ports"

	"gonum.org/v1/gonum/mat"
)

// coefficientsFile is the serialized regression model: per-feature weights
// plus an intercept, exported from the training pipeline.
type coefficientsFile struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
	Accuracy  string    `json:"accuracy"`
}

// LinearModel is a trained linear regression consumed as a black box. The
// service only calls Predict; training lives elsewhere.
type LinearModel struct {
	weights   *mat.VecDense
	intercept float64
	label     string
}

// Load reads a JSON coefficients file and validates its dimensionality.
func Load(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var cf coefficientsFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}
	if len(cf.Weights) != ports.FeatureCount {
		return nil, fmt.Errorf("model expects %d weights, file has %d", ports.FeatureCount, len(cf.Weights))
	}

	label := cf.Accuracy
	if label == "" {
		label = "Regression Model"
	}

	return &LinearModel{
		weights:   mat.NewVecDense(len(cf.Weights), cf.Weights),
		intercept: cf.Intercept,
		label:     label,
	}, nil
}

// Label is the accuracy description reported to clients
func (m *LinearModel) Label() string {
	return m.label
}

// Predict evaluates the regression on a feature vector
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != m.weights.Len() {
		return 0, fmt.Errorf("expected %d features, got %d", m.weights.Len(), len(features))
	}

	x := mat.NewVecDense(len(features), features)
	predicted := mat.Dot(m.weights, x) + m.intercept
	if predicted <= 0 {
		return 0, fmt.Errorf("model produced non-positive price %.2f", predicted)
	}
	return predicted, nil
}

var _ ports.PricePredictor = (*LinearModel)(nil)
