// Package classifier wraps a pretrained binary classifier behind a small
// batch interface.
package classifier

import (
	"context"
	"fmt"
)

// Classifier scores batches of fixed-length feature vectors.
type Classifier interface {
	NumFeatures() int
	Predict(ctx context.Context, x [][]float64) ([]int, error)
	PredictProba(ctx context.Context, x [][]float64) ([][]float64, error)
	PredictLogProba(ctx context.Context, x [][]float64) ([][]float64, error)
}

// BatchPredictor is implemented by classifiers that produce all three
// outputs in one pass.
type BatchPredictor interface {
	PredictAll(ctx context.Context, x [][]float64) (*Prediction, error)
}

// Prediction holds three parallel sequences, one entry per input vector.
type Prediction struct {
	Labels         []int       `json:"prediction"`
	Probability    [][]float64 `json:"probability"`
	LogProbability [][]float64 `json:"log_probability"`
}

// Evaluate runs clf over x. Errors from the model are returned unchanged;
// there is no retry.
func Evaluate(ctx context.Context, clf Classifier, x [][]float64) (*Prediction, error) {
	if len(x) == 0 {
		return nil, ErrEmptyBatch
	}

	if bp, ok := clf.(BatchPredictor); ok {
		p, err := bp.PredictAll(ctx, x)
		if err != nil {
			return nil, err
		}
		return p, p.check(len(x))
	}

	labels, err := clf.Predict(ctx, x)
	if err != nil {
		return nil, err
	}
	proba, err := clf.PredictProba(ctx, x)
	if err != nil {
		return nil, err
	}
	logProba, err := clf.PredictLogProba(ctx, x)
	if err != nil {
		return nil, err
	}

	p := &Prediction{Labels: labels, Probability: proba, LogProbability: logProba}
	return p, p.check(len(x))
}

func (p *Prediction) check(n int) error {
	if len(p.Labels) != n || len(p.Probability) != n || len(p.LogProbability) != n {
		return fmt.Errorf("%w: %d inputs, %d labels, %d probabilities, %d log probabilities",
			ErrInconsistent, n, len(p.Labels), len(p.Probability), len(p.LogProbability))
	}
	return nil
}

// OutcomeSplit maps a label onto the survived/died pie split shown by the
// dashboard. It is a display convenience, not a calibrated probability.
func OutcomeSplit(label int) [2]int {
	if label == 0 {
		return [2]int{0, 100}
	}
	return [2]int{100, 0}
}

// CheckWidth verifies every row has n features.
func CheckWidth(x [][]float64, n int) error {
	for i, row := range x {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d, want %d", ErrFeatureCount, i, len(row), n)
		}
	}
	return nil
}
