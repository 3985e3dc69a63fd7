package form_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alertdesk-backend/internal/form"
)

func mustSchema(t *testing.T, name string) *form.Schema {
	t.Helper()
	schema, err := form.Lookup(name)
	require.NoError(t, err)
	return schema
}

var longFeedback = strings.Repeat("useful feedback ", 4)

func TestValidate_EventRegistration(t *testing.T) {
	schema := mustSchema(t, form.EventRegistration)

	tests := []struct {
		name     string
		state    form.State
		expected form.Errors
	}{
		{
			name: "Missing Name",
			state: form.State{
				"name": form.Text(""), "email": form.Text("a@b.com"), "age": form.Text("5"), "attendingWithGuest": form.Text("No"),
			},
			expected: form.Errors{"name": "Name is required"},
		},
		{
			name: "Guest Name Required When Attending With Guest",
			state: form.State{
				"name": form.Text("A"), "email": form.Text("a@b.com"), "age": form.Text("5"),
				"attendingWithGuest": form.Text("Yes"), "guestName": form.Text(""),
			},
			expected: form.Errors{"guestName": "Guest Name is required"},
		},
		{
			name: "Guest Name Ignored Without Guest",
			state: form.State{
				"name": form.Text("A"), "email": form.Text("a@b.com"), "age": form.Text("5"), "attendingWithGuest": form.Text("No"),
			},
			expected: form.Errors{},
		},
		{
			name: "Invalid Email And Age",
			state: form.State{
				"name": form.Text("A"), "email": form.Text("not-an-email"), "age": form.Text("abc"), "attendingWithGuest": form.Text("No"),
			},
			expected: form.Errors{"email": "Email is invalid", "age": "Age must be a number greater than 0"},
		},
		{
			name: "Zero Age",
			state: form.State{
				"name": form.Text("A"), "email": form.Text("a@b.com"), "age": form.Text("0"), "attendingWithGuest": form.Text("No"),
			},
			expected: form.Errors{"age": "Age must be a number greater than 0"},
		},
		{
			name:  "Everything Empty",
			state: form.State{},
			expected: form.Errors{
				"name":  "Name is required",
				"email": "Email is required",
				"age":   "Age is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, form.Validate(schema, tt.state))
		})
	}
}

func TestValidate_JobApplication(t *testing.T) {
	schema := mustSchema(t, form.JobApplication)
	base := func() form.State {
		return form.State{
			"fullName":               form.Text("Ada Lovelace"),
			"email":                  form.Text("ada@example.com"),
			"phoneNumber":            form.Text("555-0100"),
			"additionalSkills":       form.List("Python"),
			"preferredInterviewTime": form.Text("2024-06-01T10:30"),
		}
	}

	t.Run("No Position", func(t *testing.T) {
		assert.Empty(t, form.Validate(schema, base()))
	})

	t.Run("Developer Needs Experience", func(t *testing.T) {
		state := base()
		state["position"] = form.Text("Developer")
		state["relevantExperience"] = form.Text("0")
		assert.Equal(t, form.Errors{
			"relevantExperience": "Relevant Experience is required and must be greater than 0",
		}, form.Validate(schema, state))
	})

	t.Run("Designer Needs Portfolio", func(t *testing.T) {
		state := base()
		state["position"] = form.Text("Designer")
		state["relevantExperience"] = form.Text("3")
		state["portfolioURL"] = form.Text("ftp://portfolio")
		assert.Equal(t, form.Errors{"portfolioURL": "A valid Portfolio URL is required"}, form.Validate(schema, state))

		state["portfolioURL"] = form.Text("https://ada.example.com")
		assert.Empty(t, form.Validate(schema, state))
	})

	t.Run("Manager Needs Management Experience Only", func(t *testing.T) {
		state := base()
		state["position"] = form.Text("Manager")
		assert.Equal(t, form.Errors{"managementExperience": "Management Experience is required"}, form.Validate(schema, state))
	})

	t.Run("Skills And Interview Time", func(t *testing.T) {
		state := base()
		state["additionalSkills"] = form.List()
		state["preferredInterviewTime"] = form.Text("")
		assert.Equal(t, form.Errors{
			"additionalSkills":       "At least one skill must be selected",
			"preferredInterviewTime": "Preferred Interview Time is required",
		}, form.Validate(schema, state))

		state["additionalSkills"] = form.List("Go")
		state["preferredInterviewTime"] = form.Text("tomorrow")
		errs := form.Validate(schema, state)
		assert.Contains(t, errs, "additionalSkills")
		assert.Equal(t, "Preferred Interview Time is invalid", errs["preferredInterviewTime"])
	})

	t.Run("Unknown Position", func(t *testing.T) {
		state := base()
		state["position"] = form.Text("Astronaut")
		assert.Equal(t, form.Errors{"position": "Position is invalid"}, form.Validate(schema, state))
	})
}

func TestValidate_Survey(t *testing.T) {
	schema := mustSchema(t, form.Survey)

	t.Run("Health Missing Diet Preference", func(t *testing.T) {
		state := form.State{
			"fullName":          form.Text("Grace"),
			"email":             form.Text("grace@example.com"),
			"surveyTopic":       form.Text("Health"),
			"exerciseFrequency": form.Text("Weekly"),
			"feedback":          form.Text(longFeedback),
		}
		assert.Equal(t, form.Errors{"dietPreference": "Diet Preference is required"}, form.Validate(schema, state))
	})

	t.Run("Technology Fields", func(t *testing.T) {
		state := form.State{
			"fullName":    form.Text("Grace"),
			"email":       form.Text("grace@example.com"),
			"surveyTopic": form.Text("Technology"),
			"feedback":    form.Text(longFeedback),
		}
		assert.Equal(t, form.Errors{
			"favoriteLanguage":  "Favorite Programming Language is required",
			"yearsOfExperience": "Years of Experience is required and must be greater than 0",
		}, form.Validate(schema, state))
	})

	t.Run("Education Fields", func(t *testing.T) {
		state := form.State{
			"fullName":             form.Text("Grace"),
			"email":                form.Text("grace@example.com"),
			"surveyTopic":          form.Text("Education"),
			"highestQualification": form.Text("PhD"),
			"fieldOfStudy":         form.Text("Mathematics"),
			"feedback":             form.Text(longFeedback),
		}
		assert.Empty(t, form.Validate(schema, state))
	})

	t.Run("Short Feedback And No Topic", func(t *testing.T) {
		state := form.State{
			"fullName": form.Text("Grace"),
			"email":    form.Text("grace@example.com"),
			"feedback": form.Text("too short"),
		}
		assert.Equal(t, form.Errors{
			"surveyTopic": "Survey Topic is required",
			"feedback":    "Feedback is required and must be at least 50 characters",
		}, form.Validate(schema, state))
	})
}

func TestValidate_Idempotent(t *testing.T) {
	for _, name := range form.Names() {
		t.Run(name, func(t *testing.T) {
			schema := mustSchema(t, name)
			state := schema.Defaults()
			first := form.Validate(schema, state)
			second := form.Validate(schema, state)
			assert.Equal(t, first, second)
			assert.NotEmpty(t, first)
		})
	}
}

func TestValidate_EmptyRequiredFieldsReported(t *testing.T) {
	schema := mustSchema(t, form.JobApplication)
	state := schema.Defaults()
	state["position"] = form.Text("Designer")

	errs := form.Validate(schema, state)

	for _, field := range []string{"fullName", "email", "phoneNumber", "relevantExperience", "portfolioURL", "additionalSkills", "preferredInterviewTime"} {
		assert.Contains(t, errs, field)
	}
	assert.NotContains(t, errs, "managementExperience")
	assert.NotContains(t, errs, "position")
}

func TestLookup_UnknownForm(t *testing.T) {
	_, err := form.Lookup("newsletter")
	assert.ErrorIs(t, err, form.ErrUnknownForm)
	assert.Equal(t, []string{form.EventRegistration, form.JobApplication, form.Survey}, form.Names())
}

func TestActiveFields(t *testing.T) {
	schema := mustSchema(t, form.Survey)

	names := func(fields []form.Field) []string {
		out := make([]string, 0, len(fields))
		for _, f := range fields {
			out = append(out, f.Name)
		}
		return out
	}

	assert.Equal(t, []string{"fullName", "email", "surveyTopic", "feedback"}, names(schema.ActiveFields(form.State{})))
	assert.Equal(t,
		[]string{"fullName", "email", "surveyTopic", "exerciseFrequency", "dietPreference", "feedback"},
		names(schema.ActiveFields(form.State{"surveyTopic": form.Text("Health")})),
	)
}

func TestValidate_WrongValueType(t *testing.T) {
	const mismatch = "Value has the wrong type for this field"

	tests := []struct {
		name     string
		form     string
		state    form.State
		expected form.Errors
	}{
		{
			name: "Event Name As List",
			form: form.EventRegistration,
			state: form.State{
				"name": form.List("A"), "email": form.Text("a@b.com"), "age": form.Text("5"), "attendingWithGuest": form.Text("No"),
			},
			expected: form.Errors{"name": mismatch},
		},
		{
			name: "Event Discriminant As List",
			form: form.EventRegistration,
			state: form.State{
				"name": form.Text("A"), "email": form.Text("a@b.com"), "age": form.Text("5"), "attendingWithGuest": form.List("Yes"),
			},
			expected: form.Errors{"attendingWithGuest": mismatch},
		},
		{
			name: "Job Skills As Text",
			form: form.JobApplication,
			state: form.State{
				"fullName": form.Text("Ada"), "email": form.Text("ada@example.com"), "phoneNumber": form.Text("555-0100"),
				"additionalSkills": form.Text("Python"), "preferredInterviewTime": form.Text("2024-06-01T10:30"),
			},
			expected: form.Errors{"additionalSkills": mismatch},
		},
		{
			name: "Job Position As List",
			form: form.JobApplication,
			state: form.State{
				"fullName": form.Text("Ada"), "email": form.Text("ada@example.com"), "phoneNumber": form.Text("555-0100"),
				"position": form.List("Designer"), "additionalSkills": form.List("CSS"),
				"preferredInterviewTime": form.Text("2024-06-01T10:30"),
			},
			expected: form.Errors{"position": mismatch},
		},
		{
			name: "Survey Topic As List",
			form: form.Survey,
			state: form.State{
				"fullName": form.Text("A"), "email": form.Text("a@b.com"), "surveyTopic": form.List("Health"),
				"feedback": form.Text(strings.Repeat("x", 60)),
			},
			expected: form.Errors{"surveyTopic": mismatch},
		},
		{
			name: "Survey Empty List Still Rejected",
			form: form.Survey,
			state: form.State{
				"fullName": form.List(), "email": form.Text("a@b.com"), "surveyTopic": form.Text("Education"),
				"highestQualification": form.Text("PhD"), "fieldOfStudy": form.Text("Maths"),
				"feedback": form.Text(strings.Repeat("x", 60)),
			},
			expected: form.Errors{"fullName": mismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, form.Validate(mustSchema(t, tt.form), tt.state))
		})
	}
}

func TestValidate_WrongValueTypeFromJSON(t *testing.T) {
	var state form.State
	require.NoError(t, json.Unmarshal([]byte(`{
		"fullName": "Grace",
		"email": "grace@example.com",
		"surveyTopic": ["Health"],
		"feedback": "`+strings.Repeat("y", 60)+`"
	}`), &state))

	errs := form.Validate(mustSchema(t, form.Survey), state)

	assert.False(t, errs.Valid())
	assert.Contains(t, errs, "surveyTopic")
}
