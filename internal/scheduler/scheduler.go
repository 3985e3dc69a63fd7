package scheduler

import (
	"context"
	"fmt"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// NewScheduler runs the alert tailer on INGEST_SCHEDULE (with seconds field).
// Runs that overlap a previous one are skipped.
func NewScheduler(lc fx.Lifecycle, cfg *config.Config, producerSvc service.AlertProducerService) (*cron.Cron, error) {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
	c := cron.New(
		cron.WithParser(parser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	runCtx, cancel := context.WithCancel(context.Background())
	schedule := cfg.Ingest.Schedule
	if _, err := c.AddFunc(schedule, func() {
		if err := producerSvc.ProcessAlerts(runCtx); err != nil {
			log.Error().Err(err).Msg("Error during scheduled alert ingestion")
		}
	}); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid ingest schedule %q: %w", schedule, err)
	}
	log.Info().Str("schedule", schedule).Msg("Scheduled alert ingestion job")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			cancel()
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})
	return c, nil
}
