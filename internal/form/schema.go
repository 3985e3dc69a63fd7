// Package form holds the form definitions, their validation rules and the
// reducer that applies field changes to a form state.
package form

import (
	"errors"
	"sort"
)

var ErrUnknownForm = errors.New("unknown form")

type Kind string

const (
	KindText        Kind = "text"
	KindEmail       Kind = "email"
	KindNumber      Kind = "number"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "checkbox"
	KindTextArea    Kind = "textarea"
	KindDateTime    Kind = "datetime-local"
)

// Field describes one input. Rules run in order and the first failure wins.
type Field struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Kind    Kind     `json:"kind"`
	Options []string `json:"options,omitempty"`
	Default *Value   `json:"default,omitempty"`
	Rules   []Rule   `json:"-"`
}

// Accepts reports whether v has the shape the field's kind expects: a list for
// checkbox groups, text for everything else.
func (f Field) Accepts(v Value) bool {
	if f.Kind == KindMultiSelect {
		return v.Text == ""
	}
	return !v.isList()
}

// Schema is a form definition. Variants maps each value of the Discriminant
// field to the extra fields that become visible and validated for it; fields
// that appear in no variant are always active.
type Schema struct {
	Name         string              `json:"name"`
	Title        string              `json:"title"`
	Fields       []Field             `json:"fields"`
	Discriminant string              `json:"discriminant,omitempty"`
	Variants     map[string][]string `json:"variants,omitempty"`
	// ResetErrorsOnChange drops the previous errors as soon as any field changes.
	ResetErrorsOnChange bool `json:"-"`
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s *Schema) conditional() map[string]bool {
	fields := make(map[string]bool)
	for _, names := range s.Variants {
		for _, name := range names {
			fields[name] = true
		}
	}
	return fields
}

// ActiveFields returns the fields shown for the current discriminant value,
// in declaration order.
func (s *Schema) ActiveFields(state State) []Field {
	conditional := s.conditional()
	enabled := make(map[string]bool)
	if s.Discriminant != "" {
		for _, name := range s.Variants[state.Get(s.Discriminant).Text] {
			enabled[name] = true
		}
	}

	active := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if conditional[f.Name] && !enabled[f.Name] {
			continue
		}
		active = append(active, f)
	}
	return active
}

// Defaults returns a fresh state with every field at its initial value.
func (s *Schema) Defaults() State {
	state := make(State, len(s.Fields))
	for _, f := range s.Fields {
		switch {
		case f.Default != nil:
			state[f.Name] = *f.Default
		case f.Kind == KindMultiSelect:
			state[f.Name] = List()
		default:
			state[f.Name] = Text("")
		}
	}
	return state.Clone()
}

// SummaryLine is one "Label: value" row of a submission summary.
type SummaryLine struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value Value  `json:"value"`
}

// Summary lists the active fields and their values.
func (s *Schema) Summary(state State) []SummaryLine {
	fields := s.ActiveFields(state)
	lines := make([]SummaryLine, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, SummaryLine{Field: f.Name, Label: f.Label, Value: state.Get(f.Name)})
	}
	return lines
}

var registry = map[string]*Schema{}

func register(s *Schema) *Schema {
	registry[s.Name] = s
	return s
}

// Lookup returns the schema registered under name.
func Lookup(name string) (*Schema, error) {
	s, ok := registry[name]
	if !ok {
		return nil, ErrUnknownForm
	}
	return s, nil
}

// Names lists the registered forms.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
