package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"alertdesk-backend/config"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

var ErrQuestionsUnavailable = errors.New("network response was not ok")

type questionsResponse struct {
	Questions []string `json:"questions"`
}

// QuestionService fetches topic-specific follow-up questions for the survey.
type QuestionService interface {
	FetchQuestions(ctx context.Context, topic string) ([]string, error)
}

type httpQuestionService struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewQuestionService(cfg *config.Config) QuestionService {
	timeout := cfg.FollowUp.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return newQuestionService(cfg.FollowUp, &http.Client{Timeout: timeout})
}

func newQuestionService(cfg config.FollowUpConfig, client *http.Client) *httpQuestionService {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	settings := gobreaker.Settings{
		Name:    "followup-questions",
		Timeout: cfg.OpenInterval,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// A caller giving up says nothing about the upstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
		},
	}
	return &httpQuestionService{
		baseURL:    cfg.QuestionsURL,
		httpClient: client,
		breaker:    gobreaker.NewCircuitBreaker(settings),
	}
}

func (s *httpQuestionService) FetchQuestions(ctx context.Context, topic string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info().Str("topic", topic).Msg("Fetching follow-up questions")
	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.callQuestionsAPI(ctx, topic)
	})
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to fetch follow-up questions")
		return nil, err
	}
	questions := result.([]string)
	log.Debug().Str("topic", topic).Int("count", len(questions)).Msg("Fetched follow-up questions")
	return questions, nil
}

func (s *httpQuestionService) callQuestionsAPI(ctx context.Context, topic string) ([]string, error) {
	endpoint, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid questions url: %w", err)
	}
	query := endpoint.Query()
	query.Set("topic", topic)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call questions api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrQuestionsUnavailable, resp.StatusCode)
	}

	var body questionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode questions response: %w", err)
	}
	if body.Questions == nil {
		body.Questions = []string{}
	}
	return body.Questions, nil
}
