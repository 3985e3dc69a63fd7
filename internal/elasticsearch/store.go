package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/model"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// AlertStore indexes eve records into daily alert indices.
type AlertStore interface {
	StoreAlerts(ctx context.Context, alerts []model.IngestedAlert) error
}

type elasticAlertStore struct {
	client        *elasticsearch.Client
	indexPrefix   string
	workers       int
	flushBytes    int
	flushInterval time.Duration
	now           func() time.Time

	countIndexed uint64
	countFailed  uint64
}

// ProvideAlertStore connects, ensures the index template and registers a stop
// hook that logs the final counters.
func ProvideAlertStore(lc fx.Lifecycle, cfg *config.Config) (AlertStore, error) {
	client, err := Connect(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to Elasticsearch after multiple retries")
		return nil, err
	}
	store, err := NewAlertStore(context.Background(), client, cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().
				Uint64("indexed", atomic.LoadUint64(&store.countIndexed)).
				Uint64("failed", atomic.LoadUint64(&store.countFailed)).
				Msg("Elasticsearch alert store final stats")
			return nil
		},
	})
	return store, nil
}

func NewAlertStore(ctx context.Context, client *elasticsearch.Client, cfg *config.Config) (*elasticAlertStore, error) {
	store := &elasticAlertStore{
		client:        client,
		indexPrefix:   cfg.Elasticsearch.AlertIndex,
		workers:       cfg.Elasticsearch.BulkWorkers,
		flushBytes:    cfg.Elasticsearch.FlushBytes,
		flushInterval: cfg.Elasticsearch.FlushInterval,
		now:           time.Now,
	}
	if err := store.ensureIndexTemplate(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *elasticAlertStore) ensureIndexTemplate(ctx context.Context) error {
	template := fmt.Sprintf(`{
		"index_patterns": ["%s-*"],
		"template": {
			"mappings": {
				"properties": {
					"@timestamp":  {"type": "date"},
					"timestamp":   {"type": "keyword"},
					"proto":       {"type": "keyword"},
					"src_ip":      {"type": "ip", "ignore_malformed": true},
					"dest_ip":     {"type": "ip", "ignore_malformed": true},
					"event_type":  {"type": "keyword"},
					"severity":    {"type": "integer"},
					"source_file": {"type": "keyword"},
					"alert": {
						"properties": {
							"severity":  {"type": "integer"},
							"signature": {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
							"category":  {"type": "keyword"}
						}
					}
				}
			}
		}
	}`, s.indexPrefix)

	req := esapi.IndicesPutIndexTemplateRequest{
		Name: s.indexPrefix,
		Body: strings.NewReader(template),
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("failed to put index template: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("put index template returned %s", res.Status())
	}
	log.Info().Str("template", s.indexPrefix).Msg("Ensured alert index template")
	return nil
}

// StoreAlerts indexes one batch and waits for it to flush, so a nil error
// means every document was accepted.
func (s *elasticAlertStore) StoreAlerts(ctx context.Context, alerts []model.IngestedAlert) error {
	if len(alerts) == 0 {
		return nil
	}

	var failed uint64
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:        s.client,
		NumWorkers:    s.workers,
		FlushBytes:    s.flushBytes,
		FlushInterval: s.flushInterval,
		OnError: func(ctx context.Context, err error) {
			log.Error().Err(err).Msg("BulkIndexer error")
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	ingestTime := s.now()
	for _, alert := range alerts {
		doc := newAlertDocument(alert.Record, alert.Source, ingestTime)
		data, err := json.Marshal(doc)
		if err != nil {
			atomic.AddUint64(&failed, 1)
			continue
		}
		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action: "index",
			Index:  indexName(s.indexPrefix, doc.EventTime),
			Body:   bytes.NewReader(data),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				atomic.AddUint64(&failed, 1)
				if err != nil {
					log.Error().Err(err).Str("index", item.Index).Msg("Failed to index alert")
					return
				}
				log.Error().Str("index", item.Index).Str("type", res.Error.Type).Str("reason", res.Error.Reason).Msg("Failed to index alert")
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("Failed to add alert to BulkIndexer")
			atomic.AddUint64(&failed, 1)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to flush bulk indexer: %w", err)
	}
	stats := bi.Stats()
	atomic.AddUint64(&s.countIndexed, stats.NumIndexed)
	atomic.AddUint64(&s.countFailed, failed)

	if n := atomic.LoadUint64(&failed); n > 0 {
		return fmt.Errorf("%d of %d alerts failed to index", n, len(alerts))
	}
	log.Debug().Uint64("indexed", stats.NumIndexed).Int("batch", len(alerts)).Msg("Indexed alert batch")
	return nil
}
