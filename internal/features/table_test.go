package features

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/cardioai/internal/fields"
	"github.com/Alijeyrad/cardioai/internal/registry"
)

func shippedFields(t *testing.T) *fields.Config {
	t.Helper()
	cfg, err := fields.Load(filepath.Join("..", "..", "configs", "fields.json"))
	require.NoError(t, err)
	return cfg
}

func TestNewTable_RejectsDuplicates(t *testing.T) {
	_, err := NewTable([]Feature{
		{Name: "A", Source: "x", Transform: Identity()},
		{Name: "A", Source: "y", Transform: Identity()},
	})
	assert.ErrorIs(t, err, ErrDuplicateFeature)
}

func TestMiokard_MatchesShippedFields(t *testing.T) {
	cfg := shippedFields(t)

	table, err := NewTable(Miokard())
	require.NoError(t, err)
	assert.Equal(t, 107, table.Len())

	require.NoError(t, table.Check(cfg, 107))
	assert.ErrorIs(t, table.Check(cfg, 108), ErrFeatureCount)
}

func TestCheck_UnknownSource(t *testing.T) {
	cfg, err := fields.New([]fields.Field{{Name: "a"}})
	require.NoError(t, err)

	table, err := NewTable([]Feature{
		{Name: "A", Source: "a", Transform: Identity()},
		{Name: "B", Source: "b", Transform: Identity()},
		{Name: "C", Transform: Constant(0)},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, table.Check(cfg, 3), ErrUnknownSource)
}

func TestProject_DefaultRecordHasFullLength(t *testing.T) {
	cfg := shippedFields(t)
	table, err := NewTable(Miokard())
	require.NoError(t, err)

	reg := registry.New(cfg)
	rec, _ := reg.Add(map[string]any{
		"surname":    "A",
		"gender":     "мужской",
		"date_birth": "2000-01-01",
		"rhythm_ecg": []any{"sinus_rhythm"},
	})

	p, err := table.Project(rec, projectionTime)
	require.NoError(t, err)
	require.Len(t, p.Values, 107)
	assert.Empty(t, p.Warnings)

	assert.Equal(t, "AGE", p.Names[0])
	assert.Equal(t, 24.0, p.Values[0])
	assert.Equal(t, 1.0, p.Values[1])

	idx := indexOf(p.Names, "ritm_ecg_p_01")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, 1.0, p.Values[idx])
}

func TestProject_UnmappableValuesBecomeNaN(t *testing.T) {
	cfg := shippedFields(t)
	table, err := NewTable(Miokard())
	require.NoError(t, err)

	reg := registry.New(cfg)
	rec, _ := reg.Add(map[string]any{"systolic_pressure": "high"})

	p, err := table.Project(rec, projectionTime)
	require.NoError(t, err)
	require.Len(t, p.Values, 107)

	// gender and date_birth default to null, systolic_pressure is garbage
	assert.Len(t, p.Warnings, 3)
	assert.True(t, math.IsNaN(p.Values[indexOf(p.Names, "S_AD_ORIT")]))
	assert.True(t, math.IsNaN(p.Values[0]))
}

func TestProject_EmptyRecord(t *testing.T) {
	table, err := NewTable(Miokard())
	require.NoError(t, err)

	_, err = table.Project(nil, projectionTime)
	assert.ErrorIs(t, err, ErrEmptyRecord)
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
