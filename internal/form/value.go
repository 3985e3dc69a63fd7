package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Value is a single field value: free text (numbers arrive as text) or the
// selected options of a checkbox group.
type Value struct {
	Text string
	List []string
}

func Text(s string) Value { return Value{Text: s} }

func List(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{List: items}
}

// IsEmpty reports whether the field holds nothing.
func (v Value) IsEmpty() bool {
	return v.Text == "" && len(v.List) == 0
}

func (v Value) isList() bool {
	return v.List != nil
}

// Contains reports whether option is one of the selected entries.
func (v Value) Contains(option string) bool {
	for _, item := range v.List {
		if item == option {
			return true
		}
	}
	return false
}

func (v Value) String() string {
	if v.isList() {
		return strings.Join(v.List, ", ")
	}
	return v.Text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList() {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = Value{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	case data[0] == '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("list values must contain strings: %w", err)
		}
		*v = List(items...)
	case data[0] == '{':
		return fmt.Errorf("unsupported field value: %s", data)
	default:
		// numbers and booleans are kept as their literal text
		*v = Text(string(data))
	}
	return nil
}

// State maps field names to their current values.
type State map[string]Value

// Get returns the value of a field, the zero Value when unset.
func (s State) Get(field string) Value {
	return s[field]
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		if v.isList() {
			v.List = append([]string{}, v.List...)
		}
		out[k] = v
	}
	return out
}

// Errors maps field names to human readable messages. Empty means valid.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}
