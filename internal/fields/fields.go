// Package fields loads the static form field configuration: per-field defaults
// and the optional group a one-hot field belongs to.
package fields

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Field is one column of a patient record.
type Field struct {
	Name    string `json:"name"`
	Default any    `json:"default"`
	Group   string `json:"group,omitempty"`
}

type fieldSpec struct {
	Default any     `json:"default"`
	Group   *string `json:"group"`
}

// Config is the ordered field list. Column order follows the source file.
type Config struct {
	fields []Field
	index  map[string]int
	groups map[string][]string
}

// Load reads the configuration file; a missing file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigNotFound, path, err)
	}
	return Parse(data)
}

// Parse decodes a JSON object of name -> {default, group}, keeping key order.
func Parse(data []byte) (*Config, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidConfig)
	}

	var list []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		name, _ := tok.(string)

		var spec fieldSpec
		if err := dec.Decode(&spec); err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidConfig, name, err)
		}

		f := Field{Name: name, Default: NormalizeNumber(spec.Default)}
		if spec.Group != nil {
			f.Group = *spec.Group
		}
		list = append(list, f)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: unterminated object: %w", ErrInvalidConfig, err)
	}

	return New(list)
}

// New builds a Config from an explicit field list.
func New(list []Field) (*Config, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrInvalidConfig)
	}

	c := &Config{
		fields: make([]Field, 0, len(list)),
		index:  make(map[string]int, len(list)),
		groups: make(map[string][]string),
	}
	for _, f := range list {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidConfig)
		}
		if _, dup := c.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidConfig, f.Name)
		}
		c.index[f.Name] = len(c.fields)
		c.fields = append(c.fields, f)
		if f.Group != "" {
			c.groups[f.Group] = append(c.groups[f.Group], f.Name)
		}
	}

	for g := range c.groups {
		if _, clash := c.index[g]; clash {
			return nil, fmt.Errorf("%w: group %q shadows a field of the same name", ErrInvalidConfig, g)
		}
	}

	return c, nil
}

// Fields returns the fields in column order.
func (c *Config) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Names returns the column names in order.
func (c *Config) Names() []string {
	out := make([]string, len(c.fields))
	for i, f := range c.fields {
		out[i] = f.Name
	}
	return out
}

func (c *Config) Len() int { return len(c.fields) }

func (c *Config) Lookup(name string) (Field, bool) {
	i, ok := c.index[name]
	if !ok {
		return Field{}, false
	}
	return c.fields[i], true
}

// Index returns the column position of name.
func (c *Config) Index(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// IsGroup reports whether name is a group key rather than a column.
func (c *Config) IsGroup(name string) bool {
	_, ok := c.groups[name]
	return ok
}

// Group returns the member columns of a group in column order.
func (c *Config) Group(name string) []string {
	members := c.groups[name]
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// Groups maps every group name to its member columns.
func (c *Config) Groups() map[string][]string {
	out := make(map[string][]string, len(c.groups))
	for g := range c.groups {
		out[g] = c.Group(g)
	}
	return out
}

// Defaults returns a fresh row of default values in column order.
func (c *Config) Defaults() []any {
	row := make([]any, len(c.fields))
	for i, f := range c.fields {
		row[i] = f.Default
	}
	return row
}

// NormalizeNumber turns a json.Number into int64 when integral, float64 otherwise.
// Any other value is returned unchanged.
func NormalizeNumber(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
