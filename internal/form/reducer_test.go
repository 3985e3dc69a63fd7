package form_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alertdesk-backend/internal/form"
)

func TestReduce_FieldChangedLeavesInputUntouched(t *testing.T) {
	state := form.State{"name": form.Text("")}

	next := form.Reduce(state, form.Event{Type: form.FieldChanged, Field: "name", Value: form.Text("Ada")})

	assert.Equal(t, "Ada", next.Get("name").Text)
	assert.Equal(t, "", state.Get("name").Text)
}

func TestReduce_OptionToggled(t *testing.T) {
	state := form.State{"additionalSkills": form.List()}
	toggle := func(s form.State, option string, checked bool) form.State {
		return form.Reduce(s, form.Event{Type: form.OptionToggled, Field: "additionalSkills", Option: option, Checked: checked})
	}

	state = toggle(state, "Python", true)
	state = toggle(state, "CSS", true)
	state = toggle(state, "Python", true) // no duplicates
	assert.Equal(t, []string{"CSS", "Python"}, state.Get("additionalSkills").List)

	state = toggle(state, "CSS", false)
	assert.Equal(t, []string{"Python"}, state.Get("additionalSkills").List)

	state = toggle(state, "Python", false)
	assert.True(t, state.Get("additionalSkills").IsEmpty())
}

func TestReduce_UnknownEventIsNoop(t *testing.T) {
	state := form.State{"name": form.Text("Ada")}
	next := form.Reduce(state, form.Event{Type: "cleared", Field: "name"})
	assert.Equal(t, state, next)
}

func TestValue_JSON(t *testing.T) {
	var state form.State
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ada","age":42,"skills":["Go","CSS"],"guest":null,"flag":true}`), &state))

	assert.Equal(t, "Ada", state.Get("name").Text)
	assert.Equal(t, "42", state.Get("age").Text)
	assert.Equal(t, []string{"Go", "CSS"}, state.Get("skills").List)
	assert.True(t, state.Get("guest").IsEmpty())
	assert.Equal(t, "true", state.Get("flag").Text)

	out, err := json.Marshal(form.State{"skills": form.List(), "name": form.Text("Ada")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":[],"name":"Ada"}`, string(out))

	var bad form.State
	assert.Error(t, json.Unmarshal([]byte(`{"name":{"first":"Ada"}}`), &bad))
}

func TestSession_Lifecycle(t *testing.T) {
	schema := mustSchema(t, form.EventRegistration)
	session := form.NewSession("s-1", schema)
	require.Equal(t, form.StatusEditing, session.Status)
	assert.Equal(t, "No", session.State.Get("attendingWithGuest").Text)

	errs, err := session.Submit(schema, time.Now())
	require.NoError(t, err)
	assert.Len(t, errs, 3)
	assert.Equal(t, form.StatusEditing, session.Status)
	assert.Nil(t, session.Submission)

	edits := map[string]string{"name": "Ada", "email": "ada@example.com", "age": "36", "attendingWithGuest": "Yes"}
	for field, value := range edits {
		require.NoError(t, session.Apply(schema, form.Event{Type: form.FieldChanged, Field: field, Value: form.Text(value)}))
	}
	// event registration keeps the previous errors until the next submit
	assert.Len(t, session.Errors, 3)

	errs, err = session.Submit(schema, time.Now())
	require.NoError(t, err)
	assert.Equal(t, form.Errors{"guestName": "Guest Name is required"}, errs)

	require.NoError(t, session.Apply(schema, form.Event{Type: form.FieldChanged, Field: "guestName", Value: form.Text("Charles")}))
	errs, err = session.Submit(schema, time.Now())
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, form.StatusSubmitted, session.Status)
	require.NotNil(t, session.Submission)
	assert.Equal(t, "Charles", session.Submission.Values.Get("guestName").Text)
	assert.Len(t, session.Submission.Summary, 5)

	err = session.Apply(schema, form.Event{Type: form.FieldChanged, Field: "name", Value: form.Text("Eve")})
	assert.ErrorIs(t, err, form.ErrAlreadySubmitted)
	_, err = session.Submit(schema, time.Now())
	assert.ErrorIs(t, err, form.ErrAlreadySubmitted)
	assert.Equal(t, "Ada", session.Submission.Values.Get("name").Text)
}

func TestSession_ResetErrorsOnChange(t *testing.T) {
	schema := mustSchema(t, form.Survey)
	session := form.NewSession("s-2", schema)

	errs, err := session.Submit(schema, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, errs)

	require.NoError(t, session.Apply(schema, form.Event{Type: form.FieldChanged, Field: "fullName", Value: form.Text("Grace")}))
	assert.Empty(t, session.Errors)
}
