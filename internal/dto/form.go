package dto

import "alertdesk-backend/internal/form"

// FormSchemaResponse is the schema plus the fields visible for the supplied
// state.
type FormSchemaResponse struct {
	Schema       *form.Schema `json:"schema"`
	ActiveFields []form.Field `json:"activeFields"`
	Defaults     form.State   `json:"defaults"`
}

type FormStateRequest struct {
	State form.State `json:"state"`
}

type ValidationResponse struct {
	Valid  bool        `json:"valid"`
	Errors form.Errors `json:"errors"`
}
