// Package features projects a patient record onto the fixed-order numeric
// vector the classifier was trained on and scales it against a reference
// dataset.
package features

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/Alijeyrad/cardioai/internal/fields"
)

// Feature binds one classifier input to the record field it is read from.
// Source is empty for constant features.
type Feature struct {
	Name      string
	Source    string
	Transform Transform
}

// Table is the ordered feature list. Order is the classifier's column order.
type Table struct {
	features []Feature
}

// Projection is a record mapped onto the table.
type Projection struct {
	Names    []string
	Values   []float64
	Warnings []string
}

func NewTable(list []Feature) (*Table, error) {
	seen := make(map[string]struct{}, len(list))
	for _, f := range list {
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFeature, f.Name)
		}
		if f.Transform == nil {
			return nil, fmt.Errorf("feature %s has no transform", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return &Table{features: append([]Feature(nil), list...)}, nil
}

// Check verifies every source is a configured column and the table length
// equals the classifier's feature count.
func (t *Table) Check(cfg *fields.Config, expected int) error {
	missing := lo.FilterMap(t.features, func(f Feature, _ int) (string, bool) {
		if f.Source == "" {
			return "", false
		}
		_, ok := cfg.Lookup(f.Source)
		return f.Source, !ok
	})
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrUnknownSource, missing)
	}
	if len(t.features) != expected {
		return fmt.Errorf("%w: table has %d, classifier expects %d", ErrFeatureCount, len(t.features), expected)
	}
	return nil
}

func (t *Table) Len() int { return len(t.features) }

func (t *Table) Names() []string {
	return lo.Map(t.features, func(f Feature, _ int) string { return f.Name })
}

// Project maps record through the table. Values that cannot be converted
// become NaN and are reported in Warnings.
func (t *Table) Project(record map[string]any, now time.Time) (Projection, error) {
	if len(record) == 0 {
		return Projection{}, ErrEmptyRecord
	}

	p := Projection{
		Names:  t.Names(),
		Values: make([]float64, len(t.features)),
	}
	for i, f := range t.features {
		var v any
		if f.Source != "" {
			var ok bool
			v, ok = record[f.Source]
			if !ok {
				p.Values[i] = math.NaN()
				p.Warnings = append(p.Warnings, fmt.Sprintf("%s: field %s not in record", f.Name, f.Source))
				continue
			}
		}

		x, err := f.Transform(v, now)
		if err != nil {
			x = math.NaN()
			p.Warnings = append(p.Warnings, fmt.Sprintf("%s: %v", f.Name, err))
		}
		p.Values[i] = x
	}
	return p, nil
}
