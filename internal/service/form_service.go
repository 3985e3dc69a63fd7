package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"alertdesk-backend/internal/dto"
	"alertdesk-backend/internal/form"
	"alertdesk-backend/internal/metrics"
	"alertdesk-backend/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrValidationFailed = errors.New("form has validation errors")
	errStaleFollowUp    = errors.New("follow-up request superseded")
)

type FormService interface {
	Schema(name string, state form.State) (*dto.FormSchemaResponse, error)
	Validate(name string, state form.State) (form.Errors, error)
	Open(ctx context.Context, name string) (*form.Session, error)
	Get(ctx context.Context, id string) (*form.Session, error)
	Apply(ctx context.Context, id string, event form.Event) (*form.Session, error)
	// Submit returns ErrValidationFailed together with the session holding the
	// errors when the state does not validate.
	Submit(ctx context.Context, id string) (*form.Session, error)
	Close(ctx context.Context, id string) error
	// Shutdown cancels in-flight follow-up fetches and waits for them.
	Shutdown()
}

type pendingFetch struct {
	requestID string
	cancel    context.CancelFunc
}

type formService struct {
	store     store.SessionStore
	questions QuestionService
	now       func() time.Time

	baseCtx   context.Context
	cancelAll context.CancelFunc

	mu      sync.Mutex
	pending map[string]pendingFetch
	wg      sync.WaitGroup
}

func NewFormService(sessionStore store.SessionStore, questions QuestionService) FormService {
	ctx, cancel := context.WithCancel(context.Background())
	return &formService{
		store:     sessionStore,
		questions: questions,
		now:       time.Now,
		baseCtx:   ctx,
		cancelAll: cancel,
		pending:   make(map[string]pendingFetch),
	}
}

func (s *formService) Schema(name string, state form.State) (*dto.FormSchemaResponse, error) {
	schema, err := form.Lookup(name)
	if err != nil {
		return nil, err
	}
	merged := schema.Defaults()
	for field, value := range state {
		merged[field] = value
	}
	return &dto.FormSchemaResponse{
		Schema:       schema,
		ActiveFields: schema.ActiveFields(merged),
		Defaults:     schema.Defaults(),
	}, nil
}

func (s *formService) Validate(name string, state form.State) (form.Errors, error) {
	schema, err := form.Lookup(name)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = form.State{}
	}
	return form.Validate(schema, state), nil
}

func (s *formService) Open(ctx context.Context, name string) (*form.Session, error) {
	schema, err := form.Lookup(name)
	if err != nil {
		return nil, err
	}
	session, err := s.store.Create(ctx, schema)
	if err != nil {
		log.Error().Err(err).Str("form", name).Msg("Failed to create form session")
		return nil, err
	}
	log.Info().Str("form", name).Str("session_id", session.ID).Msg("Opened form session")
	return session, nil
}

func (s *formService) Get(ctx context.Context, id string) (*form.Session, error) {
	return s.store.Get(ctx, id)
}

func (s *formService) Apply(ctx context.Context, id string, event form.Event) (*form.Session, error) {
	return s.store.Update(ctx, id, func(session *form.Session) error {
		schema, err := form.Lookup(session.Form)
		if err != nil {
			return err
		}
		return session.Apply(schema, event)
	})
}

func (s *formService) Submit(ctx context.Context, id string) (*form.Session, error) {
	var topic string
	session, err := s.store.Update(ctx, id, func(session *form.Session) error {
		schema, err := form.Lookup(session.Form)
		if err != nil {
			return err
		}
		errs, err := session.Submit(schema, s.now())
		if err != nil {
			return err
		}
		if !errs.Valid() {
			return ErrValidationFailed
		}
		if session.Form == form.Survey {
			topic = session.State.Get("surveyTopic").Text
			session.FollowUp = &form.FollowUp{
				Status:    form.FollowUpPending,
				RequestID: uuid.NewString(),
				Questions: []string{},
			}
		}
		return nil
	})

	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return nil, err
	case errors.Is(err, ErrValidationFailed):
		metrics.FormSubmissions.WithLabelValues(session.Form, "rejected").Inc()
		log.Info().Str("session_id", id).Int("errors", len(session.Errors)).Msg("Form submission failed validation")
		return session, err
	case errors.Is(err, form.ErrAlreadySubmitted):
		metrics.FormSubmissions.WithLabelValues(session.Form, "duplicate").Inc()
		return session, err
	case err != nil:
		log.Error().Err(err).Str("session_id", id).Msg("Form submission failed")
		return nil, err
	}

	metrics.FormSubmissions.WithLabelValues(session.Form, "accepted").Inc()
	log.Info().Str("form", session.Form).Str("session_id", id).Msg("Form submitted")
	if session.FollowUp != nil && session.FollowUp.Status == form.FollowUpPending {
		s.startFollowUp(id, session.FollowUp.RequestID, topic)
	}
	return session, nil
}

func (s *formService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	if p, ok := s.pending[id]; ok {
		p.cancel()
		delete(s.pending, id)
	}
	s.mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("session_id", id).Msg("Closed form session")
	return nil
}

func (s *formService) Shutdown() {
	s.cancelAll()
	s.wg.Wait()
}

func (s *formService) startFollowUp(sessionID, requestID, topic string) {
	ctx, cancel := context.WithCancel(s.baseCtx)

	s.mu.Lock()
	if prev, ok := s.pending[sessionID]; ok {
		prev.cancel()
	}
	s.pending[sessionID] = pendingFetch{requestID: requestID, cancel: cancel}
	s.mu.Unlock()

	s.wg.Add(1)
	go s.fetchFollowUp(ctx, sessionID, requestID, topic)
}

// fetchFollowUp runs off the request path. Its result lands only if the
// session still exists and still expects this request.
func (s *formService) fetchFollowUp(ctx context.Context, sessionID, requestID, topic string) {
	defer s.wg.Done()
	defer s.releasePending(sessionID, requestID)

	questions, err := s.questions.FetchQuestions(ctx, topic)
	if ctx.Err() != nil {
		metrics.FollowUpFetches.WithLabelValues("canceled").Inc()
		log.Debug().Str("session_id", sessionID).Msg("Follow-up fetch canceled")
		return
	}
	if err != nil {
		metrics.FollowUpFetches.WithLabelValues("failed").Inc()
		log.Error().Err(err).Str("session_id", sessionID).Str("topic", topic).Msg("Error fetching follow-up questions")
		questions = []string{}
	} else {
		metrics.FollowUpFetches.WithLabelValues("succeeded").Inc()
	}

	_, err = s.store.Update(ctx, sessionID, func(session *form.Session) error {
		if session.FollowUp == nil || session.FollowUp.RequestID != requestID {
			return errStaleFollowUp
		}
		session.FollowUp.Status = form.FollowUpDone
		session.FollowUp.Questions = questions
		return nil
	})
	switch {
	case errors.Is(err, errStaleFollowUp), errors.Is(err, store.ErrSessionNotFound):
		log.Debug().Str("session_id", sessionID).Msg("Dropping stale follow-up questions")
	case err != nil:
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to store follow-up questions")
	}
}

func (s *formService) releasePending(sessionID, requestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[sessionID]; ok && p.requestID == requestID {
		p.cancel()
		delete(s.pending, sessionID)
	}
}
