// Package tree evaluates decision trees and tree ensembles exported from
// scikit-learn as JSON.
//
// The artifact layout mirrors sklearn's tree_ arrays:
//
//	{
//	  "n_features_in": 107,
//	  "classes": [0, 1],
//	  "estimators": [
//	    {"children_left": [...], "children_right": [...], "feature": [...],
//	     "threshold": [...], "value": [[n0, n1], ...]}
//	  ]
//	}
//
// A single DecisionTreeClassifier is an ensemble of one estimator.
package tree

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/Alijeyrad/cardioai/internal/classifier"
)

const leaf = -1

type artifact struct {
	NFeaturesIn int         `json:"n_features_in"`
	Classes     []int       `json:"classes"`
	Estimators  []estimator `json:"estimators"`
}

type estimator struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// Model is immutable after Load and safe for concurrent use.
type Model struct {
	nFeatures int
	classes   []int
	trees     []estimator
	// leafProba caches normalized class distributions per tree and node.
	leafProba [][][]float64
}

var (
	_ classifier.Classifier     = (*Model)(nil)
	_ classifier.BatchPredictor = (*Model)(nil)
)

// Load reads and validates a model artifact.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", classifier.ErrModelNotLoaded, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Model, error) {
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %w", classifier.ErrModelNotLoaded, err)
	}
	if a.NFeaturesIn <= 0 {
		return nil, fmt.Errorf("%w: n_features_in must be positive", classifier.ErrModelNotLoaded)
	}
	if len(a.Classes) == 0 {
		return nil, fmt.Errorf("%w: no classes", classifier.ErrModelNotLoaded)
	}
	if len(a.Estimators) == 0 {
		return nil, fmt.Errorf("%w: no estimators", classifier.ErrModelNotLoaded)
	}

	m := &Model{
		nFeatures: a.NFeaturesIn,
		classes:   a.Classes,
		trees:     a.Estimators,
		leafProba: make([][][]float64, len(a.Estimators)),
	}
	for i, est := range a.Estimators {
		proba, err := validate(est, a.NFeaturesIn, len(a.Classes))
		if err != nil {
			return nil, fmt.Errorf("%w: estimator %d: %w", classifier.ErrModelNotLoaded, i, err)
		}
		m.leafProba[i] = proba
	}
	return m, nil
}

// validate checks the node arrays describe a tree whose children always
// follow their parent, and returns the normalized leaf distributions.
func validate(est estimator, nFeatures, nClasses int) ([][]float64, error) {
	n := len(est.ChildrenLeft)
	if n == 0 {
		return nil, fmt.Errorf("no nodes")
	}
	if len(est.ChildrenRight) != n || len(est.Feature) != n || len(est.Threshold) != n || len(est.Value) != n {
		return nil, fmt.Errorf("node arrays differ in length")
	}

	proba := make([][]float64, n)
	for i := 0; i < n; i++ {
		l, r := est.ChildrenLeft[i], est.ChildrenRight[i]
		if l == leaf || r == leaf {
			if l != r {
				return nil, fmt.Errorf("node %d has a single child", i)
			}
			dist, err := normalize(est.Value[i], nClasses)
			if err != nil {
				return nil, fmt.Errorf("leaf %d: %w", i, err)
			}
			proba[i] = dist
			continue
		}
		if l <= i || r <= i || l >= n || r >= n {
			return nil, fmt.Errorf("node %d has out of order children %d, %d", i, l, r)
		}
		if f := est.Feature[i]; f < 0 || f >= nFeatures {
			return nil, fmt.Errorf("node %d splits on feature %d of %d", i, f, nFeatures)
		}
	}
	return proba, nil
}

func normalize(counts []float64, nClasses int) ([]float64, error) {
	if len(counts) != nClasses {
		return nil, fmt.Errorf("value has %d classes, want %d", len(counts), nClasses)
	}
	var sum float64
	for _, c := range counts {
		sum += c
	}
	if sum <= 0 {
		return nil, fmt.Errorf("empty class distribution")
	}
	out := make([]float64, nClasses)
	for k, c := range counts {
		out[k] = c / sum
	}
	return out, nil
}

func (m *Model) NumFeatures() int { return m.nFeatures }

// Classes returns the class labels in probability column order.
func (m *Model) Classes() []int { return append([]int(nil), m.classes...) }

func (m *Model) PredictProba(ctx context.Context, x [][]float64) ([][]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := classifier.CheckWidth(x, m.nFeatures); err != nil {
		return nil, err
	}

	out := make([][]float64, len(x))
	for i, row := range x {
		out[i] = m.proba(row)
	}
	return out, nil
}

func (m *Model) Predict(ctx context.Context, x [][]float64) ([]int, error) {
	proba, err := m.PredictProba(ctx, x)
	if err != nil {
		return nil, err
	}
	labels := make([]int, len(proba))
	for i, p := range proba {
		labels[i] = m.classes[argmax(p)]
	}
	return labels, nil
}

func (m *Model) PredictLogProba(ctx context.Context, x [][]float64) ([][]float64, error) {
	proba, err := m.PredictProba(ctx, x)
	if err != nil {
		return nil, err
	}
	for _, p := range proba {
		logInPlace(p)
	}
	return proba, nil
}

// PredictAll walks each tree once per row.
func (m *Model) PredictAll(ctx context.Context, x [][]float64) (*classifier.Prediction, error) {
	proba, err := m.PredictProba(ctx, x)
	if err != nil {
		return nil, err
	}

	p := &classifier.Prediction{
		Labels:         make([]int, len(proba)),
		Probability:    proba,
		LogProbability: make([][]float64, len(proba)),
	}
	for i, row := range proba {
		p.Labels[i] = m.classes[argmax(row)]
		lp := append([]float64(nil), row...)
		logInPlace(lp)
		p.LogProbability[i] = lp
	}
	return p, nil
}

// proba averages the leaf distributions of every tree.
func (m *Model) proba(row []float64) []float64 {
	out := make([]float64, len(m.classes))
	for t, est := range m.trees {
		node := 0
		for est.ChildrenLeft[node] != leaf {
			// NaN fails the comparison and goes right
			if row[est.Feature[node]] <= est.Threshold[node] {
				node = est.ChildrenLeft[node]
			} else {
				node = est.ChildrenRight[node]
			}
		}
		for k, v := range m.leafProba[t][node] {
			out[k] += v
		}
	}
	n := float64(len(m.trees))
	for k := range out {
		out[k] /= n
	}
	return out
}

// logInPlace takes the natural log, clamping zero so the result stays finite
// and JSON encodable.
func logInPlace(p []float64) {
	for k, v := range p {
		p[k] = math.Log(math.Max(v, math.SmallestNonzeroFloat64))
	}
}

func argmax(p []float64) int {
	best := 0
	for k := 1; k < len(p); k++ {
		if p[k] > p[best] {
			best = k
		}
	}
	return best
}
