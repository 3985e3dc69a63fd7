package timescaledb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

type AlertEventStore interface {
	StoreAlertEvents(ctx context.Context, events []model.AlertEvent) error
	Close()
}

type timescaleAlertEventStore struct {
	pool      *pgxpool.Pool
	tableName string
}

const (
	alertEventsTableName = "alert_events"
	colTime              = "time"
	colEventType         = "event_type"
	colProto             = "proto"
	colSeverity          = "severity"
	colTags              = "tags"
)

var alertEventColumns = []string{colTime, colEventType, colProto, colSeverity, colTags}

func ProvideTimescaleDBPool(lc fx.Lifecycle, cfg *config.Config) (AlertEventStore, *pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.TimescaleDB.DSN)
	if err != nil {
		log.Error().Err(err).Msg("Failed to parse TimescaleDB DSN")
		return nil, nil, fmt.Errorf("invalid TimescaleDB DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Error().Err(err).Msg("Unable to create connection pool to TimescaleDB")
		return nil, nil, fmt.Errorf("failed to connect to TimescaleDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Error().Err(err).Msg("Failed to ping TimescaleDB")
		return nil, nil, fmt.Errorf("failed to ping TimescaleDB: %w", err)
	}
	log.Info().Msg("TimescaleDB connection pool created and verified.")

	store := &timescaleAlertEventStore{
		pool:      pool,
		tableName: alertEventsTableName,
	}

	setupCtx, cancelSetup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelSetup()
	if err := store.ensureHypertable(setupCtx); err != nil {
		pool.Close()
		log.Error().Err(err).Msg("Failed to ensure alert_events hypertable exists")
		return nil, nil, fmt.Errorf("failed ensuring hypertable: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing TimescaleDB connection pool...")
			store.Close()
			return nil
		},
	})
	return store, pool, nil
}

func (s *timescaleAlertEventStore) ensureHypertable(ctx context.Context) error {
	createTableSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			%s TIMESTAMPTZ NOT NULL,
			%s TEXT NOT NULL,
			%s TEXT,
			%s INTEGER,
			%s JSONB
		);`,
		s.tableName, colTime, colEventType, colProto, colSeverity, colTags)
	if _, err := s.pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create base table %s: %w", s.tableName, err)
	}

	isHypertable := hypertableExists(ctx, s.pool, s.tableName)

	if !isHypertable {
		if _, err := s.pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS timescaledb;"); err != nil {
			log.Warn().Err(err).Msg("Failed to ensure timescaledb extension exists, trying to proceed")
		}
		createHyperSQL := fmt.Sprintf(
			"SELECT create_hypertable('%s', '%s', if_not_exists => TRUE, chunk_time_interval => INTERVAL '1 day');",
			s.tableName, colTime,
		)
		if _, err := s.pool.Exec(ctx, createHyperSQL); err != nil && !strings.Contains(err.Error(), "already a hypertable") {
			return fmt.Errorf("failed to create hypertable %s: %w", s.tableName, err)
		}
		log.Info().Str("table", s.tableName).Msg("Ensured hypertable.")
	}

	indexSQL := fmt.Sprintf(`
		CREATE INDEX IF NOT EXISTS idx_%[1]s_proto_time ON %[1]s (proto, time DESC);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_severity_time ON %[1]s (severity, time DESC);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_tags ON %[1]s USING GIN (tags);
	`, s.tableName)
	if _, err := s.pool.Exec(ctx, indexSQL); err != nil {
		log.Warn().Err(err).Msg("Failed to create indexes on alert_events (continuing)")
	}
	return nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// hypertableExists treats a failed lookup as "not yet", so creation is attempted.
func hypertableExists(ctx context.Context, db rowQuerier, table string) bool {
	var exists bool
	if err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM timescaledb_information.hypertables WHERE hypertable_name = $1);`,
		table,
	).Scan(&exists); err != nil {
		log.Debug().Err(err).Str("table", table).Msg("Hypertable lookup failed, attempting creation")
		return false
	}
	return exists
}

func alertEventRow(e model.AlertEvent) []interface{} {
	tagsJSON, err := json.Marshal(e.Tags)
	if err != nil {
		log.Error().Err(err).Interface("tags", e.Tags).Msg("Failed to marshal alert tags, inserting null")
		tagsJSON = nil
	}
	var proto interface{}
	if e.Proto != "" {
		proto = e.Proto
	}
	return []interface{}{e.Time, e.EventType, proto, e.Severity, tagsJSON}
}

func (s *timescaleAlertEventStore) StoreAlertEvents(ctx context.Context, events []model.AlertEvent) error {
	if len(events) == 0 {
		return nil
	}
	source := pgx.CopyFromSlice(len(events), func(i int) ([]interface{}, error) {
		return alertEventRow(events[i]), nil
	})

	copyCount, err := s.pool.CopyFrom(ctx, pgx.Identifier{s.tableName}, alertEventColumns, source)
	if err != nil {
		log.Error().Err(err).Msg("Failed to bulk insert alert events into TimescaleDB")
		return fmt.Errorf("timescaledb copyfrom failed: %w", err)
	}
	if int(copyCount) != len(events) {
		log.Warn().Int64("inserted", copyCount).Int("expected", len(events)).Msg("TimescaleDB CopyFrom event count mismatch")
	}
	return nil
}

func (s *timescaleAlertEventStore) Close() {
	s.pool.Close()
}
