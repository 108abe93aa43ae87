package features

import (
	"fmt"
	"math"
)

// Normalize min-max scales the projection against ref. The bounds of each
// column include the projected value itself, so results stay in [0, 1].
// A degenerate column scales to 0; so does a NaN or infinite input, with a
// warning.
func Normalize(p Projection, ref *Reference) (Projection, error) {
	out := Projection{
		Names:    p.Names,
		Values:   make([]float64, len(p.Values)),
		Warnings: append([]string(nil), p.Warnings...),
	}

	for i, name := range p.Names {
		b, err := ref.Bounds(name)
		if err != nil {
			return Projection{}, err
		}

		x := p.Values[i]
		if math.IsNaN(x) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("%s: missing value scaled to 0", name))
			continue
		}
		if math.IsInf(x, 0) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("%s: infinite value scaled to 0", name))
			continue
		}

		lo, hi := x, x
		if b.Count > 0 {
			lo = math.Min(b.Min, x)
			hi = math.Max(b.Max, x)
		}
		if hi == lo {
			continue
		}
		out.Values[i] = (x - lo) / (hi - lo)
	}

	return out, nil
}
