package service

import (
	"context"
	"errors"
	"time"

	"alertdesk-backend/internal/dto"
	"alertdesk-backend/internal/repository"

	"github.com/rs/zerolog/log"
)

var (
	ErrTimeRangeRequired = errors.New("startTime and endTime are required")
	ErrTimeRangeInverted = errors.New("endTime cannot be before startTime")
)

// AlertArchiveService queries ingested alerts beyond the live eve.json.
type AlertArchiveService interface {
	Search(ctx context.Context, req dto.AlertSearchRequest) (*dto.AlertSearchResponse, error)
	History(ctx context.Context, req dto.AlertHistoryRequest) (*dto.AlertHistoryResponse, error)
}

type alertArchiveService struct {
	archiveRepo repository.AlertArchiveRepository
	historyRepo repository.AlertHistoryRepository
}

func NewAlertArchiveService(archiveRepo repository.AlertArchiveRepository, historyRepo repository.AlertHistoryRepository) AlertArchiveService {
	return &alertArchiveService{
		archiveRepo: archiveRepo,
		historyRepo: historyRepo,
	}
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrTimeRangeRequired
	}
	if end.Before(start) {
		return ErrTimeRangeInverted
	}
	return nil
}

func (s *alertArchiveService) Search(ctx context.Context, req dto.AlertSearchRequest) (*dto.AlertSearchResponse, error) {
	if err := validateRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Size <= 0 || req.Size > 1000 {
		req.Size = 100
	}
	log.Info().
		Time("start_time", req.StartTime).
		Time("end_time", req.EndTime).
		Strs("protocols", req.Protocols).
		Ints("severities", req.Severities).
		Int("page", req.Page).
		Int("size", req.Size).
		Msg("Searching alert archive")
	return s.archiveRepo.Search(ctx, req)
}

func (s *alertArchiveService) History(ctx context.Context, req dto.AlertHistoryRequest) (*dto.AlertHistoryResponse, error) {
	if err := validateRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if req.Interval == "" {
		req.Interval = "1 hour"
	}
	if req.GroupBy == "" {
		req.GroupBy = "total"
	}
	log.Info().
		Time("start_time", req.StartTime).
		Time("end_time", req.EndTime).
		Str("interval", req.Interval).
		Str("group_by", req.GroupBy).
		Msg("Getting alert history")
	return s.historyRepo.GetHistory(ctx, req)
}
