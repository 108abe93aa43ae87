package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/cardioai/internal/fields"
)

func testFields(t *testing.T) *fields.Config {
	t.Helper()
	cfg, err := fields.New([]fields.Field{
		{Name: "surname", Default: ""},
		{Name: "name", Default: ""},
		{Name: "middle_name", Default: ""},
		{Name: "gender", Default: nil},
		{Name: "hypertension", Default: int64(0)},
		{Name: "potassium_content", Default: 4.5},
		{Name: "sinus_rhythm", Default: int64(0), Group: "rhythm_ecg"},
		{Name: "atrial_fibrillation", Default: int64(0), Group: "rhythm_ecg"},
		{Name: "atrial_rhythm", Default: int64(0), Group: "rhythm_ecg"},
	})
	require.NoError(t, err)
	return cfg
}

func TestAdd_DefaultsThenOverrides(t *testing.T) {
	r := New(testFields(t))

	rec, warnings := r.Add(map[string]any{
		"surname":      "Иванов",
		"hypertension": float64(2),
		"gender":       nil,
		"unknown_key":  "ignored",
	})
	assert.Empty(t, warnings)

	assert.Equal(t, "Иванов", rec["surname"])
	assert.Equal(t, float64(2), rec["hypertension"])
	assert.Nil(t, rec["gender"], "explicit null keeps the default")
	assert.Equal(t, 4.5, rec["potassium_content"])
	assert.NotContains(t, rec, "unknown_key")
	assert.Equal(t, 1, r.Len())
}

func TestAdd_BooleansBecomeZeroOrOne(t *testing.T) {
	r := New(testFields(t))

	rec, _ := r.Add(map[string]any{"hypertension": true})
	assert.Equal(t, int64(1), rec["hypertension"])

	rec, _ = r.Add(map[string]any{"hypertension": false})
	assert.Equal(t, int64(0), rec["hypertension"])
}

func TestAdd_GroupSelection(t *testing.T) {
	tests := []struct {
		name      string
		selection any
		want      map[string]any
		warnings  int
	}{
		{
			name:      "empty list leaves defaults",
			selection: []any{},
			want:      map[string]any{"sinus_rhythm": int64(0), "atrial_fibrillation": int64(0), "atrial_rhythm": int64(0)},
		},
		{
			name:      "list sets exactly the chosen columns",
			selection: []any{"sinus_rhythm", "atrial_rhythm"},
			want:      map[string]any{"sinus_rhythm": int64(1), "atrial_fibrillation": int64(0), "atrial_rhythm": int64(1)},
		},
		{
			name:      "repeated selection is idempotent",
			selection: []any{"sinus_rhythm", "sinus_rhythm"},
			want:      map[string]any{"sinus_rhythm": int64(1), "atrial_fibrillation": int64(0), "atrial_rhythm": int64(0)},
		},
		{
			name:      "scalar selection",
			selection: "atrial_fibrillation",
			want:      map[string]any{"sinus_rhythm": int64(0), "atrial_fibrillation": int64(1), "atrial_rhythm": int64(0)},
		},
		{
			name:      "foreign option is ignored with a warning",
			selection: []any{"hypertension", "sinus_rhythm"},
			want:      map[string]any{"sinus_rhythm": int64(1), "atrial_fibrillation": int64(0), "atrial_rhythm": int64(0)},
			warnings:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(testFields(t))
			rec, warnings := r.Add(map[string]any{"rhythm_ecg": tt.selection})

			assert.Len(t, warnings, tt.warnings)
			for k, v := range tt.want {
				assert.Equal(t, v, rec[k], k)
			}
			assert.Equal(t, int64(0), rec["hypertension"])
		})
	}
}

func TestAdd_GroupWinsOverExplicitSubField(t *testing.T) {
	r := New(testFields(t))

	rec, _ := r.Add(map[string]any{
		"rhythm_ecg":   []any{"sinus_rhythm"},
		"sinus_rhythm": false,
	})
	assert.Equal(t, int64(1), rec["sinus_rhythm"])
}

func TestLatestAndNames(t *testing.T) {
	r := New(testFields(t))

	_, err := r.Latest()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Empty(t, r.Names())

	r.Add(map[string]any{"surname": "A", "name": "B", "middle_name": "C"})
	r.Add(map[string]any{"surname": "D", "hypertension": 1})

	latest, err := r.Latest()
	require.NoError(t, err)
	assert.Equal(t, "D", latest["surname"])
	assert.Equal(t, int64(1), latest["hypertension"])

	assert.Equal(t, []Name{
		{Surname: "A", Name: "B", MiddleName: "C"},
		{Surname: "D"},
	}, r.Names())
}

func TestRecords_ReturnsCopies(t *testing.T) {
	r := New(testFields(t))
	r.Add(map[string]any{"surname": "A"})

	rows := r.Records()
	rows[0][0] = "changed"

	assert.Equal(t, "A", r.Records()[0][0])
}
