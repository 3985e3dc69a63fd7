package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alertdesk-backend/config"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_FetchQuestions(t *testing.T) {
	var gotTopic string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTopic = r.URL.Query().Get("topic")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"questions":["How often do you code?","Favourite editor?"]}`))
	}))
	defer srv.Close()

	svc := newQuestionService(config.FollowUpConfig{QuestionsURL: srv.URL}, srv.Client())
	questions, err := svc.FetchQuestions(context.Background(), "Technology")

	require.NoError(t, err)
	assert.Equal(t, "Technology", gotTopic)
	assert.Equal(t, []string{"How often do you code?", "Favourite editor?"}, questions)
}

func TestQuestionService_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrQuestionsUnavailable},
		{name: "not found", status: http.StatusNotFound, body: "", wantErr: ErrQuestionsUnavailable},
		{name: "bad json", status: http.StatusOK, body: "{not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			svc := newQuestionService(config.FollowUpConfig{QuestionsURL: srv.URL}, srv.Client())
			questions, err := svc.FetchQuestions(context.Background(), "Health")

			require.Error(t, err)
			assert.Nil(t, questions)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func TestQuestionService_EmptyQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := newQuestionService(config.FollowUpConfig{QuestionsURL: srv.URL}, srv.Client())
	questions, err := svc.FetchQuestions(context.Background(), "Education")

	require.NoError(t, err)
	assert.Empty(t, questions)
	assert.NotNil(t, questions)
}

func TestQuestionService_BreakerOpens(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := newQuestionService(config.FollowUpConfig{
		QuestionsURL: srv.URL,
		MaxFailures:  2,
		OpenInterval: time.Minute,
	}, srv.Client())

	for i := 0; i < 2; i++ {
		_, err := svc.FetchQuestions(context.Background(), "Technology")
		require.Error(t, err)
	}
	_, err := svc.FetchQuestions(context.Background(), "Technology")

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, calls)
}

func TestQuestionService_CanceledCallsDoNotTripBreaker(t *testing.T) {
	arrived := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("topic") == "Health" {
			arrived <- struct{}{}
			<-r.Context().Done()
			return
		}
		w.Write([]byte(`{"questions":["Do you sleep well?"]}`))
	}))
	defer srv.Close()

	svc := newQuestionService(config.FollowUpConfig{
		QuestionsURL: srv.URL,
		MaxFailures:  2,
		OpenInterval: time.Minute,
	}, srv.Client())

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			<-arrived
			cancel()
		}()
		_, err := svc.FetchQuestions(ctx, "Health")
		require.ErrorIs(t, err, context.Canceled)
		cancel()
	}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.FetchQuestions(canceled, "Health")
	require.ErrorIs(t, err, context.Canceled)

	questions, err := svc.FetchQuestions(context.Background(), "Technology")
	require.NoError(t, err)
	assert.Equal(t, []string{"Do you sleep well?"}, questions)
	assert.Equal(t, gobreaker.StateClosed, svc.breaker.State())
}
