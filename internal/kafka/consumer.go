package kafka

import (
	"context"
	"errors"
	"time"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

type AlertConsumer interface {
	// FetchAlert returns the raw message even when decoding fails so the
	// caller can commit past it.
	FetchAlert(ctx context.Context) (*model.IngestedAlert, kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaAlertConsumer struct {
	reader *kafka.Reader
}

func NewKafkaAlertConsumer(lc fx.Lifecycle, cfg *config.Config) (AlertConsumer, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.ConsumerGroup,
		Topic:          cfg.Kafka.AlertTopic,
		MinBytes:       1e3,
		MaxBytes:       10e6,
		MaxWait:        5 * time.Second,
		CommitInterval: 0,
		StartOffset:    kafka.FirstOffset,
	})
	c := &kafkaAlertConsumer{
		reader: reader,
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stats := reader.Stats()
			log.Info().
				Str("group", cfg.Kafka.ConsumerGroup).
				Int64("messages", stats.Messages).
				Int64("errors", stats.Errors).
				Int64("lag", stats.Lag).
				Msg("Closing Kafka alert consumer")
			return c.Close()
		},
	})
	log.Info().
		Strs("brokers", cfg.Kafka.Brokers).
		Str("topic", cfg.Kafka.AlertTopic).
		Str("group", cfg.Kafka.ConsumerGroup).
		Msg("Kafka alert consumer initialized")
	return c, nil
}

func (c *kafkaAlertConsumer) FetchAlert(ctx context.Context) (*model.IngestedAlert, kafka.Message, error) {
	msg, err := c.reader.FetchMessage(ctx)
	if err != nil {
		if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			log.Warn().Err(err).Msg("Kafka fetch failed")
		}
		return nil, kafka.Message{}, err
	}
	log.Debug().
		Int("partition", msg.Partition).
		Int64("offset", msg.Offset).
		Msg("Fetched alert from Kafka")
	alert, err := decodeAlert(msg)
	if err != nil {
		log.Error().Err(err).Int64("offset", msg.Offset).Msg("Failed to decode alert message")
		return nil, msg, err
	}
	return alert, msg, nil
}

func (c *kafkaAlertConsumer) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	if err := c.reader.CommitMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Int("count", len(msgs)).Msg("Failed to commit Kafka messages")
		return err
	}
	log.Debug().Int("count", len(msgs)).Int64("last_offset", msgs[len(msgs)-1].Offset).Msg("Committed Kafka messages")
	return nil
}

func (c *kafkaAlertConsumer) Close() error {
	return c.reader.Close()
}
