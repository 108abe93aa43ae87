package features

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectionTime = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func TestAgeYears(t *testing.T) {
	tests := []struct {
		name string
		born any
		now  time.Time
		want float64
	}{
		{"exact anniversary", "2000-01-01", projectionTime, 24},
		{"day before birthday", "2000-01-02", projectionTime, 23},
		{"time value", time.Date(1960, time.June, 15, 0, 0, 0, 0, time.UTC), projectionTime, 63},
		{"leap day", "2000-02-29", time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC), 23},
		{"with time of day", "1980-12-31T10:00:00", projectionTime, 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AgeYears()(tt.born, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgeYears_Invalid(t *testing.T) {
	tests := []struct {
		name string
		born any
	}{
		{"missing", nil},
		{"garbage", "not a date"},
		{"future", "2030-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AgeYears()(tt.born, projectionTime)
			assert.Error(t, err)
			assert.True(t, math.IsNaN(got))
		})
	}
}

func TestRecode_Sex(t *testing.T) {
	sex := Recode(sexCodes)

	got, err := sex("мужской", projectionTime)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = sex("женский", projectionTime)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// other values are passed through unrecoded
	got, err = sex(int64(1), projectionTime)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = sex("other", projectionTime)
	assert.ErrorIs(t, err, ErrNotNumeric)
	assert.True(t, math.IsNaN(got))
}

func TestIdentity(t *testing.T) {
	id := Identity()

	for _, v := range []any{int64(3), 3.0, "3", "3.0"} {
		got, err := id(v, projectionTime)
		require.NoError(t, err, "%v", v)
		assert.Equal(t, 3.0, got)
	}

	_, err := id(nil, projectionTime)
	assert.ErrorIs(t, err, ErrMissingValue)

	for _, v := range []any{"high", "inf", "Infinity", "-inf", "NaN", math.Inf(1)} {
		got, err := id(v, projectionTime)
		assert.ErrorIs(t, err, ErrNotNumeric, "%v", v)
		assert.True(t, math.IsNaN(got), "%v", v)
	}
}

func TestConstant(t *testing.T) {
	got, err := Constant(0)(nil, projectionTime)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}
