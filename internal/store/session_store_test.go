package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alertdesk-backend/internal/form"
	"alertdesk-backend/internal/store"
)

func TestInMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	schema, err := form.Lookup(form.EventRegistration)
	require.NoError(t, err)
	s := store.NewInMemorySessionStore()

	created, err := s.Create(ctx, schema)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// returned sessions are copies
	created.State["name"] = form.Text("mutated")
	fetched, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "", fetched.State.Get("name").Text)

	updated, err := s.Update(ctx, created.ID, func(session *form.Session) error {
		return session.Apply(schema, form.Event{Type: form.FieldChanged, Field: "name", Value: form.Text("Ada")})
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.State.Get("name").Text)

	boom := errors.New("boom")
	_, err = s.Update(ctx, created.ID, func(*form.Session) error { return boom })
	assert.ErrorIs(t, err, boom)

	require.NoError(t, s.Delete(ctx, created.ID))
	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
	assert.ErrorIs(t, s.Delete(ctx, created.ID), store.ErrSessionNotFound)
	_, err = s.Update(ctx, created.ID, func(*form.Session) error { return nil })
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestInMemorySessionStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	schema, err := form.Lookup(form.JobApplication)
	require.NoError(t, err)
	s := store.NewInMemorySessionStore()
	created, err := s.Create(ctx, schema)
	require.NoError(t, err)

	skills := []string{"JavaScript", "CSS", "Python", "React", "Node.js"}
	var wg sync.WaitGroup
	for _, skill := range skills {
		wg.Add(1)
		go func(option string) {
			defer wg.Done()
			_, err := s.Update(ctx, created.ID, func(session *form.Session) error {
				return session.Apply(schema, form.Event{Type: form.OptionToggled, Field: "additionalSkills", Option: option, Checked: true})
			})
			assert.NoError(t, err)
		}(skill)
	}
	wg.Wait()

	fetched, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, skills, fetched.State.Get("additionalSkills").List)
}
