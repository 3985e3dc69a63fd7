package timescaledb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"alertdesk-backend/internal/dto"
	"alertdesk-backend/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

var historyGroupBy = map[string]string{
	"proto":      "COALESCE(proto, 'unknown')",
	"severity":   "COALESCE(severity::text, 'none')",
	"event_type": "event_type",
}

var historyIntervals = map[string]bool{
	"5 minute": true, "15 minute": true, "1 hour": true, "6 hour": true, "1 day": true,
}

type timescaleAlertRepository struct {
	pool       *pgxpool.Pool
	eventTable string
}

func NewTimescaleAlertRepository(pool *pgxpool.Pool) repository.AlertHistoryRepository {
	return &timescaleAlertRepository{
		pool:       pool,
		eventTable: alertEventsTableName,
	}
}

// buildHistoryQuery returns the time_bucket query and its arguments. Unknown
// groupings fall back to a single "total" series.
func buildHistoryQuery(table string, req dto.AlertHistoryRequest) (string, []interface{}, error) {
	if !historyIntervals[req.Interval] {
		return "", nil, fmt.Errorf("invalid interval: %s", req.Interval)
	}
	groupSQL, ok := historyGroupBy[req.GroupBy]
	if !ok {
		groupSQL = "'total'"
	}
	query := fmt.Sprintf(
		"SELECT time_bucket($1::interval, time) AS bucket, %s AS group_key, COUNT(*) AS value "+
			"FROM %s WHERE time >= $2 AND time < $3 "+
			"GROUP BY bucket, group_key ORDER BY bucket ASC",
		groupSQL, table,
	)
	return query, []interface{}{req.Interval, req.StartTime, req.EndTime}, nil
}

func (r *timescaleAlertRepository) GetHistory(ctx context.Context, req dto.AlertHistoryRequest) (*dto.AlertHistoryResponse, error) {
	query, args, err := buildHistoryQuery(r.eventTable, req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("query", query).Interface("args", args).Msg("Executing alert history query")

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Failed to execute alert history query")
		return nil, fmt.Errorf("alert history query failed: %w", err)
	}
	defer rows.Close()

	seriesMap := make(map[string][]dto.TimeseriesDataPoint)
	for rows.Next() {
		var bucket time.Time
		var groupKey string
		var value int64
		if err := rows.Scan(&bucket, &groupKey, &value); err != nil {
			log.Error().Err(err).Msg("Failed to scan alert history row")
			continue
		}
		seriesMap[groupKey] = append(seriesMap[groupKey], dto.TimeseriesDataPoint{
			Timestamp: bucket.UnixMilli(),
			Value:     value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating alert history rows: %w", err)
	}

	names := make([]string, 0, len(seriesMap))
	for name := range seriesMap {
		names = append(names, name)
	}
	sort.Strings(names)

	response := &dto.AlertHistoryResponse{Series: make([]dto.TimeseriesSeries, 0, len(names))}
	for _, name := range names {
		response.Series = append(response.Series, dto.TimeseriesSeries{Name: name, Data: seriesMap[name]})
	}
	return response, nil
}
