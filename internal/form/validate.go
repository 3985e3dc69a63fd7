package form

const invalidValueMessage = "Value has the wrong type for this field"

// Validate runs every rule of the active fields against state. It keeps no
// state between calls, so the same input always yields the same Errors.
func Validate(schema *Schema, state State) Errors {
	errs := make(Errors)
	for _, f := range schema.ActiveFields(state) {
		value := state.Get(f.Name)
		if !f.Accepts(value) {
			errs[f.Name] = invalidValueMessage
			continue
		}
		for _, rule := range f.Rules {
			if message, failed := rule(value); failed {
				errs[f.Name] = message
				break
			}
		}
	}
	return errs
}
