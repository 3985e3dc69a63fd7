package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/elasticsearch"
	"alertdesk-backend/internal/kafka"
	"alertdesk-backend/internal/metrics"
	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/timescaledb"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

// AlertConsumerService drains the alert topic into the search archive and the
// time-series table.
type AlertConsumerService interface {
	Run(ctx context.Context, wg *sync.WaitGroup)
}

type alertConsumerService struct {
	consumer    kafka.AlertConsumer
	alertStore  elasticsearch.AlertStore
	eventStore  timescaledb.AlertEventStore
	extractor   metrics.Extractor
	batchSize   int
	maxWaitTime time.Duration
	retryDelay  time.Duration
}

func NewAlertConsumerService(
	consumer kafka.AlertConsumer,
	alertStore elasticsearch.AlertStore,
	eventStore timescaledb.AlertEventStore,
	extractor metrics.Extractor,
	cfg *config.Config,
) AlertConsumerService {
	batchSize := cfg.Ingest.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	maxWait := cfg.Ingest.MaxBatchWait
	if maxWait <= 0 {
		maxWait = 5 * time.Second
	}
	return &alertConsumerService{
		consumer:    consumer,
		alertStore:  alertStore,
		eventStore:  eventStore,
		extractor:   extractor,
		batchSize:   batchSize,
		maxWaitTime: maxWait,
		retryDelay:  time.Second,
	}
}

func (s *alertConsumerService) Run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	log.Info().Msg("Starting alert consumer loop...")

	for {
		if ctx.Err() != nil {
			log.Info().Msg("Alert consumer loop stopping.")
			return
		}
		if err := s.processBatch(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info().Msg("Context cancelled during batch processing.")
				return
			}
			log.Error().Err(err).Msg("Error processing alert batch")
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.retryDelay):
			}
		}
	}
}

// processBatch collects up to batchSize messages or whatever arrives within
// maxWaitTime, stores them in both backends and commits only if both succeed.
func (s *alertConsumerService) processBatch(ctx context.Context) error {
	alerts := make([]model.IngestedAlert, 0, s.batchSize)
	messages := make([]kafkaGo.Message, 0, s.batchSize)
	deadline := time.Now().Add(s.maxWaitTime)

	for len(messages) < s.batchSize {
		fetchCtx, cancel := context.WithDeadline(ctx, deadline)
		alert, msg, err := s.consumer.FetchAlert(fetchCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			if msg.Topic != "" {
				// Undecodable message: commit past it with the batch.
				messages = append(messages, msg)
				continue
			}
			return fmt.Errorf("failed to fetch kafka message: %w", err)
		}
		alerts = append(alerts, *alert)
		messages = append(messages, msg)
	}

	if len(messages) == 0 {
		return nil
	}

	if err := s.store(ctx, alerts); err != nil {
		log.Warn().Err(err).Int("batch_size", len(messages)).Msg("Skipping Kafka commit due to storage errors")
		return err
	}
	if err := s.consumer.CommitMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed committing kafka messages: %w", err)
	}
	log.Info().Int("alerts", len(alerts)).Int("messages", len(messages)).Msg("Stored and committed alert batch")
	return nil
}

func (s *alertConsumerService) store(ctx context.Context, alerts []model.IngestedAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	events := make([]model.AlertEvent, 0, len(alerts))
	for i := range alerts {
		if event, ok := s.extractor.ExtractAlertEvent(&alerts[i].Record); ok {
			events = append(events, *event)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.alertStore.StoreAlerts(gctx, alerts); err != nil {
			return fmt.Errorf("failed storing alerts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.eventStore.StoreAlertEvents(gctx, events); err != nil {
			return fmt.Errorf("failed storing alert events: %w", err)
		}
		return nil
	})
	return g.Wait()
}
