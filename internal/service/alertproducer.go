package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/filestate"
	"alertdesk-backend/internal/kafka"
	"alertdesk-backend/internal/metrics"
	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/parser"

	"github.com/rs/zerolog/log"
)

// AlertProducerService tails the eve NDJSON files in the ingest directory and
// publishes new records to Kafka.
type AlertProducerService interface {
	ProcessAlerts(ctx context.Context) error
}

type alertProducerService struct {
	producer    kafka.AlertProducer
	cfg         *config.IngestConfig
	stateMgr    filestate.Manager
	processLock sync.Mutex
	now         func() time.Time
}

func NewAlertProducerService(
	cfg *config.Config,
	stateMgr filestate.Manager,
	producer kafka.AlertProducer,
) AlertProducerService {
	return &alertProducerService{
		cfg:      &cfg.Ingest,
		stateMgr: stateMgr,
		producer: producer,
		now:      time.Now,
	}
}

// tailedRecord remembers the offset just past the line it came from.
type tailedRecord struct {
	record model.AlertRecord
	end    int64
}

func (s *alertProducerService) ProcessAlerts(ctx context.Context) error {
	if !s.processLock.TryLock() {
		log.Warn().Msg("Alert ingestion already in progress, skipping run.")
		return nil
	}
	defer s.processLock.Unlock()

	log.Info().Str("dir", s.cfg.Directory).Msg("Starting alert ingestion cycle...")
	startTime := s.now()

	offsets, err := s.stateMgr.Load()
	if err != nil {
		return fmt.Errorf("failed to load ingest offsets: %w", err)
	}

	files, err := s.findEveFiles()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list eve files")
		return fmt.Errorf("failed to find eve files: %w", err)
	}

	var linesRead, skipped, sent int
	for _, path := range files {
		tail, err := s.tailFile(ctx, path, offsets)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("Failed to read eve file")
			continue
		}
		linesRead += tail.lines
		skipped += tail.skipped

		end, published, err := s.publish(ctx, path, tail)
		sent += published
		offsets[path] = filestate.Checkpoint{Offset: end, UpdatedAt: s.now().UTC()}
		if err != nil {
			log.Error().Err(err).Str("file", path).Int64("offset", end).Msg("Stopped publishing file, will resume next cycle")
		}
		if ctx.Err() != nil {
			break
		}
	}

	if err := s.stateMgr.Save(offsets); err != nil {
		return fmt.Errorf("failed to save ingest offsets: %w", err)
	}

	log.Info().
		Int("lines_read", linesRead).
		Int("lines_skipped", skipped).
		Int("alerts_sent", sent).
		Int("files_processed", len(files)).
		Dur("duration", s.now().Sub(startTime)).
		Msg("Finished alert ingestion cycle.")
	return ctx.Err()
}

func (s *alertProducerService) findEveFiles() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingest directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			files = append(files, filepath.Join(s.cfg.Directory, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

type fileTail struct {
	start   int64
	records []tailedRecord
	// end is the offset after the last complete line, parsed or not.
	end     int64
	lines   int
	skipped int
}

// tailFile reads complete lines from the stored offset. A trailing line
// without a newline is still being written and is left for the next cycle.
func (s *alertProducerService) tailFile(ctx context.Context, path string, offsets filestate.Offsets) (*fileTail, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	start := offsets.Resume(path, info.Size())
	if prev, ok := offsets[path]; ok && prev.Offset > info.Size() {
		log.Warn().Str("file", path).Int64("last_offset", prev.Offset).Int64("current_size", info.Size()).Msg("File truncated or rotated, reading from start")
	}
	if _, err := file.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to %d: %w", start, err)
	}

	tail := &fileTail{start: start, end: start}
	reader := bufio.NewReaderSize(file, 64*1024)
	for {
		if ctx.Err() != nil {
			return tail, nil
		}
		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return tail, err
		}
		tail.end += int64(len(line))
		tail.lines++

		record, perr := parser.ParseLine(line)
		if perr != nil {
			if !errors.Is(perr, parser.ErrEmptyLine) {
				tail.skipped++
				log.Debug().Err(perr).Str("file", path).Msg("Skipping malformed eve line")
			}
			continue
		}
		tail.records = append(tail.records, tailedRecord{record: *record, end: tail.end})
	}
	return tail, nil
}

// publish sends the tailed records in batches and returns the offset up to
// which everything has been published.
func (s *alertProducerService) publish(ctx context.Context, path string, tail *fileTail) (int64, int, error) {
	batchSize := s.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	committed := tail.start
	sent := 0
	for i := 0; i < len(tail.records); i += batchSize {
		j := i + batchSize
		if j > len(tail.records) {
			j = len(tail.records)
		}
		batch := make([]model.AlertRecord, 0, j-i)
		for _, r := range tail.records[i:j] {
			batch = append(batch, r.record)
		}
		if err := s.producer.Produce(ctx, filepath.Base(path), batch); err != nil {
			return committed, sent, fmt.Errorf("kafka produce error: %w", err)
		}
		committed = tail.records[j-1].end
		sent += len(batch)
		metrics.AlertsIngested.Add(float64(len(batch)))
	}
	// Trailing malformed lines are consumed too.
	return tail.end, sent, nil
}
