package tree

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/cardioai/internal/classifier"
)

// stump splits on feature 0 at 0.5: left mostly class 0, right mostly class 1.
const stump = `{
	"n_features_in": 3,
	"classes": [0, 1],
	"estimators": [{
		"children_left":  [1, -1, -1],
		"children_right": [2, -1, -1],
		"feature":        [0, -2, -2],
		"threshold":      [0.5, -2, -2],
		"value":          [[9, 5], [8, 2], [1, 3]]
	}]
}`

const forest = `{
	"n_features_in": 3,
	"classes": [0, 1],
	"estimators": [
		{
			"children_left":  [1, -1, -1],
			"children_right": [2, -1, -1],
			"feature":        [0, -2, -2],
			"threshold":      [0.5, -2, -2],
			"value":          [[9, 5], [8, 2], [1, 3]]
		},
		{
			"children_left":  [-1],
			"children_right": [-1],
			"feature":        [-2],
			"threshold":      [-2],
			"value":          [[1, 1]]
		}
	]
}`

func TestPredictProba_Stump(t *testing.T) {
	m, err := Parse([]byte(stump))
	require.NoError(t, err)
	assert.Equal(t, 3, m.NumFeatures())

	proba, err := m.PredictProba(context.Background(), [][]float64{
		{0.2, 0, 0},
		{0.5, 0, 0},
		{0.9, 0, 0},
		{math.NaN(), 0, 0},
	})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.8, 0.2}, proba[0], 1e-12)
	assert.InDeltaSlice(t, []float64{0.8, 0.2}, proba[1], 1e-12, "threshold is inclusive on the left")
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, proba[2], 1e-12)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, proba[3], 1e-12, "NaN goes right")
}

func TestPredict_Forest(t *testing.T) {
	m, err := Parse([]byte(forest))
	require.NoError(t, err)

	labels, err := m.Predict(context.Background(), [][]float64{{0, 0, 0}, {1, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, labels)

	proba, err := m.PredictProba(context.Background(), [][]float64{{1, 0, 0}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.375, 0.625}, proba[0], 1e-12)
}

func TestPredictLogProba_ClampsZero(t *testing.T) {
	m, err := Parse([]byte(`{
		"n_features_in": 1,
		"classes": [0, 1],
		"estimators": [{"children_left": [-1], "children_right": [-1], "feature": [-2], "threshold": [-2], "value": [[4, 0]]}]
	}`))
	require.NoError(t, err)

	lp, err := m.PredictLogProba(context.Background(), [][]float64{{0}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, lp[0][0])
	assert.False(t, math.IsInf(lp[0][1], -1))
	assert.Less(t, lp[0][1], -700.0)
}

func TestPredictAll_MatchesSeparateCalls(t *testing.T) {
	m, err := Parse([]byte(forest))
	require.NoError(t, err)

	x := [][]float64{{0, 1, 2}, {0.7, 1, 2}}
	ctx := context.Background()

	all, err := m.PredictAll(ctx, x)
	require.NoError(t, err)

	labels, _ := m.Predict(ctx, x)
	proba, _ := m.PredictProba(ctx, x)
	logProba, _ := m.PredictLogProba(ctx, x)

	assert.Equal(t, labels, all.Labels)
	assert.Equal(t, proba, all.Probability)
	assert.Equal(t, logProba, all.LogProbability)
}

func TestPredict_WrongWidth(t *testing.T) {
	m, err := Parse([]byte(stump))
	require.NoError(t, err)

	_, err = m.Predict(context.Background(), [][]float64{{1, 2}})
	assert.ErrorIs(t, err, classifier.ErrFeatureCount)
}

func TestPredict_CanceledContext(t *testing.T) {
	m, err := Parse([]byte(stump))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Predict(ctx, [][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"no features", `{"n_features_in": 0, "classes": [0, 1], "estimators": [{}]}`},
		{"no classes", `{"n_features_in": 1, "classes": [], "estimators": [{}]}`},
		{"no estimators", `{"n_features_in": 1, "classes": [0, 1], "estimators": []}`},
		{"ragged arrays", `{"n_features_in": 1, "classes": [0, 1], "estimators": [
			{"children_left": [-1], "children_right": [-1, -1], "feature": [-2], "threshold": [-2], "value": [[1, 1]]}]}`},
		{"cycle", `{"n_features_in": 1, "classes": [0, 1], "estimators": [
			{"children_left": [0, -1], "children_right": [1, -1], "feature": [0, -2], "threshold": [0, -2], "value": [[1, 1], [1, 1]]}]}`},
		{"feature out of range", `{"n_features_in": 1, "classes": [0, 1], "estimators": [
			{"children_left": [1, -1, -1], "children_right": [2, -1, -1], "feature": [4, -2, -2], "threshold": [0, -2, -2], "value": [[1, 1], [1, 0], [0, 1]]}]}`},
		{"empty leaf", `{"n_features_in": 1, "classes": [0, 1], "estimators": [
			{"children_left": [-1], "children_right": [-1], "feature": [-2], "threshold": [-2], "value": [[0, 0]]}]}`},
		{"class count mismatch", `{"n_features_in": 1, "classes": [0, 1], "estimators": [
			{"children_left": [-1], "children_right": [-1], "feature": [-2], "threshold": [-2], "value": [[1, 1, 1]]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, classifier.ErrModelNotLoaded)
		})
	}
}

func TestLoad(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, classifier.ErrModelNotLoaded)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(stump), 0o644))
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, m.Classes())
}

func TestEvaluate_WithTree(t *testing.T) {
	m, err := Parse([]byte(stump))
	require.NoError(t, err)

	p, err := classifier.Evaluate(context.Background(), m, [][]float64{{0, 0, 0}, {1, 1, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p.Labels)
	assert.Len(t, p.Probability, 2)
	assert.Len(t, p.LogProbability, 2)
}
