package kafka

import (
	"context"
	"errors"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

type AlertProducer interface {
	Produce(ctx context.Context, source string, records []model.AlertRecord) error
	Close() error
}

type kafkaAlertProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaAlertProducer(lc fx.Lifecycle, cfg *config.Config) (AlertProducer, error) {
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.AlertTopic == "" {
		log.Error().Msg("Kafka brokers or alert topic is not configured.")
		return nil, errors.New("kafka configuration missing")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.AlertTopic,
		Balancer:     &kafka.Hash{},
		BatchSize:    cfg.Ingest.BatchSize,
		BatchTimeout: cfg.Ingest.MaxBatchWait,
		RequiredAcks: kafka.RequireOne,
	}
	p := &kafkaAlertProducer{
		writer: writer,
		topic:  cfg.Kafka.AlertTopic,
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing Kafka alert producer")
			return p.Close()
		},
	})
	log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.AlertTopic).Msg("Kafka alert producer initialized")
	return p, nil
}

func (p *kafkaAlertProducer) Produce(ctx context.Context, source string, records []model.AlertRecord) error {
	if len(records) == 0 {
		return nil
	}
	messages := make([]kafka.Message, 0, len(records))
	for _, record := range records {
		msg, err := encodeAlert(source, record)
		if err != nil {
			log.Error().Err(err).Str("source", source).Msg("Skipping alert that cannot be encoded")
			continue
		}
		messages = append(messages, msg)
	}
	if len(messages) == 0 {
		log.Warn().Str("source", source).Msg("No valid alert messages to produce.")
		return nil
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		log.Error().Err(err).Int("message_count", len(messages)).Msg("Failed to write alerts to Kafka")
		return err
	}
	log.Debug().Int("message_count", len(messages)).Str("topic", p.topic).Msg("Produced alerts to Kafka")
	return nil
}

func (p *kafkaAlertProducer) Close() error {
	return p.writer.Close()
}
