// Package registry holds the append-only table of patient records entered
// through the dashboard.
package registry

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/Alijeyrad/cardioai/internal/fields"
)

// Record is one patient row keyed by field name.
type Record map[string]any

// Name is the listing projection of a record.
type Name struct {
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	MiddleName string `json:"middle_name"`
}

// Registry is safe for concurrent use. Rows are never updated in place.
type Registry struct {
	mu     sync.RWMutex
	fields *fields.Config
	rows   [][]any
}

func New(cfg *fields.Config) *Registry {
	return &Registry{fields: cfg}
}

// Fields returns the configuration the registry was built with.
func (r *Registry) Fields() *fields.Config {
	return r.fields
}

// Add appends a record built from the configured defaults overwritten by sub.
// Non-group keys are applied before group selections so a submission is
// applied the same way regardless of map order. The returned warnings list
// the selections that could not be applied.
func (r *Registry) Add(sub map[string]any) (Record, []string) {
	row := r.fields.Defaults()
	var warnings []string

	keys := lo.Keys(sub)
	sort.Slice(keys, func(i, j int) bool {
		gi, gj := r.fields.IsGroup(keys[i]), r.fields.IsGroup(keys[j])
		if gi != gj {
			return !gi
		}
		return keys[i] < keys[j]
	})

	for _, key := range keys {
		value := sub[key]
		if value == nil {
			continue
		}

		if r.fields.IsGroup(key) {
			warnings = append(warnings, r.applyGroup(row, key, value)...)
			continue
		}

		idx, ok := r.fields.Index(key)
		if !ok {
			slog.Debug("registry: ignoring unknown field", "field", key)
			continue
		}

		v, ok := normalizeValue(value)
		if !ok {
			warnings = append(warnings, "field "+key+": unsupported value type, default kept")
			continue
		}
		row[idx] = v
	}

	r.mu.Lock()
	r.rows = append(r.rows, row)
	r.mu.Unlock()

	for _, w := range warnings {
		slog.Warn("registry: submission partially applied", "detail", w)
	}

	return r.toRecord(row), warnings
}

// applyGroup sets every selected sub-field of group to 1.
func (r *Registry) applyGroup(row []any, group string, value any) []string {
	var selected []string
	switch v := value.(type) {
	case string:
		selected = []string{v}
	case []string:
		selected = v
	case []any:
		for _, item := range v {
			selected = append(selected, cast.ToString(item))
		}
	default:
		return []string{"group " + group + ": selection must be a name or a list of names"}
	}

	members := r.fields.Group(group)
	var warnings []string
	for _, name := range selected {
		if !lo.Contains(members, name) {
			warnings = append(warnings, "group "+group+": unknown option "+name)
			continue
		}
		idx, _ := r.fields.Index(name)
		row[idx] = int64(1)
	}
	return warnings
}

// Names lists {surname, name, middle_name} for every record in insertion order.
func (r *Registry) Names() []Name {
	r.mu.RLock()
	defer r.mu.RUnlock()

	si, _ := r.fields.Index("surname")
	ni, _ := r.fields.Index("name")
	mi, _ := r.fields.Index("middle_name")

	return lo.Map(r.rows, func(row []any, _ int) Name {
		return Name{
			Surname:    cast.ToString(row[si]),
			Name:       cast.ToString(row[ni]),
			MiddleName: cast.ToString(row[mi]),
		}
	})
}

// Columns returns the column names in export order.
func (r *Registry) Columns() []string {
	return r.fields.Names()
}

// Records returns a copy of every row in column order.
func (r *Registry) Records() [][]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([][]any, len(r.rows))
	for i, row := range r.rows {
		out[i] = append([]any(nil), row...)
	}
	return out
}

// Latest returns the current record: the last one added.
func (r *Registry) Latest() (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.rows) == 0 {
		return nil, ErrEmpty
	}
	return r.toRecord(r.rows[len(r.rows)-1]), nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}

func (r *Registry) toRecord(row []any) Record {
	rec := make(Record, len(row))
	for i, name := range r.fields.Names() {
		rec[name] = row[i]
	}
	return rec
}

// normalizeValue coerces a submitted scalar for storage: booleans to 1/0,
// JSON numbers to int64 or float64. Lists and objects are rejected.
func normalizeValue(v any) (any, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return int64(1), true
		}
		return int64(0), true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case []any, map[string]any:
		return nil, false
	default:
		return fields.NormalizeNumber(v), true
	}
}
