package features

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceCSV = `A,B,C,D,ID
0,10,5,1,x1
10,20,5,,x2
5,,5,3,x3
`

func TestParseReference(t *testing.T) {
	ref, err := ParseReference(strings.NewReader(referenceCSV))
	require.NoError(t, err)

	b, err := ref.Bounds("B")
	require.NoError(t, err)
	assert.Equal(t, Bounds{Min: 10, Max: 20, Count: 2}, b)

	_, err = ref.Bounds("ID")
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = ref.Bounds("Z")
	assert.ErrorIs(t, err, ErrMissingReferenceColumn)
}

func TestLoadReference_Missing(t *testing.T) {
	_, err := LoadReference(filepath.Join(t.TempDir(), "none.csv"))
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestLoadReference_Ragged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,B\n1,2\n3\n"), 0o644))

	_, err := LoadReference(path)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestNormalize(t *testing.T) {
	ref, err := ParseReference(strings.NewReader(referenceCSV))
	require.NoError(t, err)

	tests := []struct {
		name     string
		feature  string
		x        float64
		want     float64
		warnings int
	}{
		{"inside bounds", "A", 5, 0.5, 0},
		{"at minimum", "B", 10, 0, 0},
		{"above maximum extends bounds", "A", 20, 1, 0},
		{"below minimum extends bounds", "D", -1, 0, 0},
		{"degenerate column", "C", 5, 0, 0},
		{"nan becomes zero", "A", math.NaN(), 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Projection{Names: []string{tt.feature}, Values: []float64{tt.x}}
			got, err := Normalize(p, ref)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Values[0], 1e-12)
			assert.Len(t, got.Warnings, tt.warnings)
		})
	}
}

func TestNormalize_ValuesInUnitInterval(t *testing.T) {
	ref, err := ParseReference(strings.NewReader(referenceCSV))
	require.NoError(t, err)

	p := Projection{Names: []string{"A", "B", "C", "D"}, Values: []float64{-3, 15, 7, 2}}
	got, err := Normalize(p, ref)
	require.NoError(t, err)

	for i, v := range got.Values {
		assert.GreaterOrEqual(t, v, 0.0, p.Names[i])
		assert.LessOrEqual(t, v, 1.0, p.Names[i])
	}
	// input is left untouched
	assert.Equal(t, -3.0, p.Values[0])
}

func TestNormalize_NonFiniteScalesToZero(t *testing.T) {
	ref, err := ParseReference(strings.NewReader("sp\n100\n200\n"))
	require.NoError(t, err)

	table, err := NewTable([]Feature{{Name: "sp", Source: "sp", Transform: Identity()}})
	require.NoError(t, err)

	for _, raw := range []string{"inf", "-Infinity"} {
		p, err := table.Project(map[string]any{"sp": raw}, projectionTime)
		require.NoError(t, err)
		assert.Len(t, p.Warnings, 1, raw)

		got, err := Normalize(p, ref)
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, got.Values, raw)
		assert.NotEmpty(t, got.Warnings, raw)
	}

	// values that bypass projection are still kept in range
	got, err := Normalize(Projection{Names: []string{"sp"}, Values: []float64{math.Inf(1)}}, ref)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, got.Values)
	assert.Len(t, got.Warnings, 1)
}

func TestParseReference_InfiniteCell(t *testing.T) {
	ref, err := ParseReference(strings.NewReader("A,B\n1,inf\n2,3\n"))
	require.NoError(t, err)

	_, err = ref.Bounds("B")
	assert.ErrorIs(t, err, ErrInvalidReference)
	b, err := ref.Bounds("A")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Count)
}

func TestNormalize_MissingColumn(t *testing.T) {
	ref, err := ParseReference(strings.NewReader(referenceCSV))
	require.NoError(t, err)

	_, err = Normalize(Projection{Names: []string{"E"}, Values: []float64{1}}, ref)
	assert.ErrorIs(t, err, ErrMissingReferenceColumn)
}
