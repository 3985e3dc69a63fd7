package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/dto"
	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/repository"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/rs/zerolog/log"
)

type elasticsearchAlertRepository struct {
	esTypedClient *elasticsearch.TypedClient
	indexPrefix   string
}

func NewElasticsearchAlertRepository(cfg *config.Config) (repository.AlertArchiveRepository, error) {
	typedClient, err := NewTypedClient(cfg)
	if err != nil {
		return nil, err
	}
	return &elasticsearchAlertRepository{
		esTypedClient: typedClient,
		indexPrefix:   cfg.Elasticsearch.AlertIndex,
	}, nil
}

func buildAlertSearch(req dto.AlertSearchRequest) *search.Request {
	start := req.StartTime.UTC().Format(time.RFC3339)
	end := req.EndTime.UTC().Format(time.RFC3339)
	filters := []types.Query{{
		Range: map[string]types.RangeQuery{
			"@timestamp": types.DateRangeQuery{Gte: &start, Lte: &end},
		},
	}}

	if len(req.Protocols) > 0 {
		filters = append(filters, termsFilter("proto", toFieldValues(req.Protocols)))
	}
	if len(req.Severities) > 0 {
		filters = append(filters, termsFilter("severity", toFieldValues(req.Severities)))
	}
	if len(req.EventTypes) > 0 {
		filters = append(filters, termsFilter("event_type", toFieldValues(req.EventTypes)))
	}

	from := (req.Page - 1) * req.Size
	size := req.Size
	order := sortorder.Desc
	return &search.Request{
		Query: &types.Query{
			Bool: &types.BoolQuery{Filter: filters},
		},
		Size: &size,
		From: &from,
		Sort: []types.SortCombinations{
			types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"@timestamp": {Order: &order},
				},
			},
		},
	}
}

func termsFilter(field string, values []types.FieldValue) types.Query {
	return types.Query{
		Terms: &types.TermsQuery{
			TermsQuery: map[string]types.TermsQueryField{field: values},
		},
	}
}

func toFieldValues[T any](items []T) []types.FieldValue {
	values := make([]types.FieldValue, len(items))
	for i, item := range items {
		values[i] = item
	}
	return values
}

func (r *elasticsearchAlertRepository) Search(ctx context.Context, req dto.AlertSearchRequest) (*dto.AlertSearchResponse, error) {
	indexPattern := fmt.Sprintf("%s-*", r.indexPrefix)

	res, err := r.esTypedClient.Search().
		Index(indexPattern).
		Request(buildAlertSearch(req)).
		Do(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error executing Elasticsearch alert search")
		return nil, fmt.Errorf("elasticsearch search failed: %w", err)
	}

	alerts := make([]model.AlertRecord, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var doc alertDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			log.Error().Err(err).Msg("Error unmarshalling alert hit source")
			continue
		}
		alerts = append(alerts, doc.AlertRecord)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	log.Debug().Int64("total_hits", total).Int("returned_hits", len(alerts)).Msg("Elasticsearch alert search successful")
	return &dto.AlertSearchResponse{
		Alerts:     alerts,
		TotalCount: total,
		Page:       req.Page,
		Size:       req.Size,
	}, nil
}
