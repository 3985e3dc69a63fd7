package form

type EventType string

const (
	FieldChanged  EventType = "field_changed"
	OptionToggled EventType = "option_toggled"
)

// Event is one user edit. FieldChanged replaces Field with Value; OptionToggled
// adds or removes Option from the checkbox group Field.
type Event struct {
	Type    EventType `json:"type" binding:"required"`
	Field   string    `json:"field" binding:"required"`
	Value   Value     `json:"value"`
	Option  string    `json:"option,omitempty"`
	Checked bool      `json:"checked,omitempty"`
}

// Reduce returns the state after event. The input state is not modified.
func Reduce(state State, event Event) State {
	next := state.Clone()
	switch event.Type {
	case FieldChanged:
		next[event.Field] = event.Value
	case OptionToggled:
		current := next.Get(event.Field)
		selected := make([]string, 0, len(current.List)+1)
		for _, item := range current.List {
			if item != event.Option {
				selected = append(selected, item)
			}
		}
		if event.Checked {
			selected = append(selected, event.Option)
		}
		next[event.Field] = List(selected...)
	}
	return next
}
