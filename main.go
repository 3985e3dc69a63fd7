// Command alertdesk-backfill indexes an existing eve.json alert log (JSON
// array or NDJSON) into the Elasticsearch alert archive.
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/elasticsearch"
	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/parser"
)

func main() {
	var (
		file      string
		batchSize int
	)

	cmd := &cobra.Command{
		Use:          "alertdesk-backfill",
		Short:        "Index an eve.json alert log into Elasticsearch",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.AlertSource.File
			}
			alerts, err := loadAlerts(file)
			if err != nil {
				return err
			}
			log.Info().Str("file", file).Int("records", len(alerts)).Msg("Loaded alert log")

			client, err := elasticsearch.Connect(cfg)
			if err != nil {
				return err
			}
			store, err := elasticsearch.NewAlertStore(cmd.Context(), client, cfg)
			if err != nil {
				return err
			}

			indexed := 0
			for start := 0; start < len(alerts); start += batchSize {
				end := min(start+batchSize, len(alerts))
				if err := store.StoreAlerts(cmd.Context(), alerts[start:end]); err != nil {
					return fmt.Errorf("batch %d-%d: %w", start, end, err)
				}
				indexed = end
				log.Info().Int("indexed", indexed).Int("total", len(alerts)).Msg("Indexed batch")
			}
			log.Info().Int("indexed", indexed).Msg("Backfill complete")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "eve.json to index (defaults to ALERT_SOURCE_FILE)")
	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", 1000, "documents per bulk request")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("Backfill failed")
	}
}

// loadAlerts accepts the JSON array served to the dashboard or raw NDJSON as
// written by the IDS.
func loadAlerts(path string) ([]model.IngestedAlert, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	source := filepath.Base(path)

	records, err := parser.DecodeAlertLog(data)
	if errors.Is(err, parser.ErrNotAnArray) {
		records, err = decodeLines(data)
	}
	if err != nil {
		return nil, err
	}

	alerts := make([]model.IngestedAlert, len(records))
	for i, record := range records {
		alerts[i] = model.IngestedAlert{Source: source, Record: record}
	}
	return alerts, nil
}

func decodeLines(data []byte) ([]model.AlertRecord, error) {
	var records []model.AlertRecord
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	skipped := 0
	for scanner.Scan() {
		record, err := parser.ParseLine(scanner.Text())
		if err != nil {
			if !errors.Is(err, parser.ErrEmptyLine) {
				skipped++
			}
			continue
		}
		records = append(records, *record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("Skipped malformed lines")
	}
	return records, nil
}
