package form

import (
	"errors"
	"time"
)

var ErrAlreadySubmitted = errors.New("form already submitted")

type Status string

const (
	StatusEditing   Status = "editing"
	StatusSubmitted Status = "submitted"
)

type FollowUpStatus string

const (
	FollowUpNone    FollowUpStatus = ""
	FollowUpPending FollowUpStatus = "pending"
	FollowUpDone    FollowUpStatus = "done"
)

// FollowUp tracks the survey's secondary question fetch. RequestID identifies
// the fetch whose answer may still be applied.
type FollowUp struct {
	Status    FollowUpStatus `json:"status,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
	Questions []string       `json:"questions"`
}

// Submission is the snapshot taken when validation passes.
type Submission struct {
	Values      State         `json:"values"`
	Summary     []SummaryLine `json:"summary"`
	SubmittedAt time.Time     `json:"submittedAt"`
}

// Session is one form instance: Editing until a submit passes validation,
// then Submitted for good.
type Session struct {
	ID         string      `json:"id"`
	Form       string      `json:"form"`
	Status     Status      `json:"status"`
	State      State       `json:"state"`
	Errors     Errors      `json:"errors"`
	Submission *Submission `json:"submission,omitempty"`
	FollowUp   *FollowUp   `json:"followUp,omitempty"`
}

// NewSession opens an editing session with the schema defaults.
func NewSession(id string, schema *Schema) *Session {
	return &Session{
		ID:     id,
		Form:   schema.Name,
		Status: StatusEditing,
		State:  schema.Defaults(),
		Errors: Errors{},
	}
}

// Apply feeds one edit through the reducer.
func (s *Session) Apply(schema *Schema, event Event) error {
	if s.Status == StatusSubmitted {
		return ErrAlreadySubmitted
	}
	s.State = Reduce(s.State, event)
	if schema.ResetErrorsOnChange {
		s.Errors = Errors{}
	}
	return nil
}

// Submit validates the current state. On success the session moves to
// Submitted and keeps an immutable snapshot; otherwise the errors are stored
// and the session stays editable.
func (s *Session) Submit(schema *Schema, now time.Time) (Errors, error) {
	if s.Status == StatusSubmitted {
		return nil, ErrAlreadySubmitted
	}
	errs := Validate(schema, s.State)
	s.Errors = errs
	if !errs.Valid() {
		return errs, nil
	}
	snapshot := s.State.Clone()
	s.Status = StatusSubmitted
	s.Submission = &Submission{
		Values:      snapshot,
		Summary:     schema.Summary(snapshot),
		SubmittedAt: now.UTC(),
	}
	return errs, nil
}

// Clone copies the session so callers can read it without holding a lock.
func (s *Session) Clone() *Session {
	out := *s
	out.State = s.State.Clone()
	out.Errors = make(Errors, len(s.Errors))
	for k, v := range s.Errors {
		out.Errors[k] = v
	}
	if s.Submission != nil {
		sub := *s.Submission
		out.Submission = &sub
	}
	if s.FollowUp != nil {
		fu := *s.FollowUp
		fu.Questions = append([]string{}, s.FollowUp.Questions...)
		out.FollowUp = &fu
	}
	return &out
}
