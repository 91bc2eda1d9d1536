package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndPredict(t *testing.T) {
	path := writeModel(t, `{
		"weights": [10, 5, -1, 0.1, 2, 0, 0],
		"intercept": 50,
		"accuracy": "Linear Regression: 82% R2"
	}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Linear Regression: 82% R2", m.Label())

	// 10*1 + 5*2 - 1*3 + 0.1*100 + 2*1 + 50 = 79.
	got, err := m.Predict([]float64{1, 2, 3, 100, 1, 40.7, -73.9})
	require.NoError(t, err)
	assert.InDelta(t, 79.0, got, 1e-9)
}

func TestLoadDefaultLabel(t *testing.T) {
	path := writeModel(t, `{"weights": [1, 1, 1, 1, 1, 1, 1], "intercept": 0}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Regression Model", m.Label())
}

func TestLoadRejectsWrongDimensions(t *testing.T) {
	path := writeModel(t, `{"weights": [1, 2, 3], "intercept": 0}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeModel(t, `{not json`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestPredictRejectsWrongFeatureCount(t *testing.T) {
	path := writeModel(t, `{"weights": [1, 1, 1, 1, 1, 1, 1], "intercept": 10}`)

	m, err := Load(path)
	require.NoError(t, err)

	_, err = m.Predict([]float64{1, 2})
	require.Error(t, err)
}

func TestPredictRejectsNonPositivePrice(t *testing.T) {
	path := writeModel(t, `{"weights": [-100, 0, 0, 0, 0, 0, 0], "intercept": 0}`)

	m, err := Load(path)
	require.NoError(t, err)

	_, err = m.Predict([]float64{1, 0, 0, 0, 0, 0, 0})
	require.Error(t, err)
}
