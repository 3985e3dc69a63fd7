package repository

import (
	"context"

	"alertdesk-backend/internal/dto"
)

// AlertArchiveRepository searches alerts indexed by the ingestion pipeline.
type AlertArchiveRepository interface {
	Search(ctx context.Context, req dto.AlertSearchRequest) (*dto.AlertSearchResponse, error)
}

// AlertHistoryRepository queries bucketed alert counts.
type AlertHistoryRepository interface {
	GetHistory(ctx context.Context, req dto.AlertHistoryRequest) (*dto.AlertHistoryResponse, error)
}
