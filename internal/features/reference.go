package features

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

// Bounds are the observed extremes of one reference column.
type Bounds struct {
	Min   float64
	Max   float64
	Count int
}

// Reference holds per-column bounds of the reference dataset. Columns with a
// non-numeric cell are kept but unusable for scaling.
type Reference struct {
	bounds  map[string]Bounds
	invalid map[string]string
}

// LoadReference reads a comma-separated dataset with a header row.
func LoadReference(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}
	defer f.Close()
	return ParseReference(f)
}

func ParseReference(r io.Reader) (*Reference, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidReference, err)
	}
	header = append([]string(nil), header...)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	ref := &Reference{
		bounds:  make(map[string]Bounds, len(header)),
		invalid: make(map[string]string),
	}
	for _, name := range header {
		ref.bounds[name] = Bounds{Min: math.Inf(1), Max: math.Inf(-1)}
	}

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidReference, line, err)
		}

		for i, cell := range rec {
			name := header[i]
			cell = strings.TrimSpace(cell)
			if isMissing(cell) {
				continue
			}
			x, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsInf(x, 0) {
				if _, seen := ref.invalid[name]; !seen {
					ref.invalid[name] = fmt.Sprintf("line %d: %q", line, cell)
				}
				continue
			}
			b := ref.bounds[name]
			b.Min = math.Min(b.Min, x)
			b.Max = math.Max(b.Max, x)
			b.Count++
			ref.bounds[name] = b
		}
	}

	return ref, nil
}

// Bounds returns the extremes of column name.
func (r *Reference) Bounds(name string) (Bounds, error) {
	if reason, bad := r.invalid[name]; bad {
		return Bounds{}, fmt.Errorf("%w: column %s is not numeric (%s)", ErrInvalidReference, name, reason)
	}
	b, ok := r.bounds[name]
	if !ok {
		return Bounds{}, fmt.Errorf("%w: %s", ErrMissingReferenceColumn, name)
	}
	return b, nil
}

func isMissing(cell string) bool {
	switch strings.ToLower(cell) {
	case "", "nan", "na", "null":
		return true
	}
	return false
}
