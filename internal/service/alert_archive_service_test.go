package service

import (
	"context"
	"testing"
	"time"

	"alertdesk-backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArchiveRepo struct {
	lastSearch  dto.AlertSearchRequest
	lastHistory dto.AlertHistoryRequest
}

func (f *fakeArchiveRepo) Search(ctx context.Context, req dto.AlertSearchRequest) (*dto.AlertSearchResponse, error) {
	f.lastSearch = req
	return &dto.AlertSearchResponse{Page: req.Page, Size: req.Size}, nil
}

func (f *fakeArchiveRepo) GetHistory(ctx context.Context, req dto.AlertHistoryRequest) (*dto.AlertHistoryResponse, error) {
	f.lastHistory = req
	return &dto.AlertHistoryResponse{Series: []dto.TimeseriesSeries{}}, nil
}

func TestAlertArchiveService_Search(t *testing.T) {
	repo := &fakeArchiveRepo{}
	svc := NewAlertArchiveService(repo, repo)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Search(context.Background(), dto.AlertSearchRequest{StartTime: start, EndTime: start.Add(time.Hour), Size: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 100, repo.lastSearch.Size)

	_, err = svc.Search(context.Background(), dto.AlertSearchRequest{StartTime: start})
	assert.ErrorIs(t, err, ErrTimeRangeRequired)

	_, err = svc.Search(context.Background(), dto.AlertSearchRequest{StartTime: start, EndTime: start.Add(-time.Hour)})
	assert.ErrorIs(t, err, ErrTimeRangeInverted)
}

func TestAlertArchiveService_HistoryDefaults(t *testing.T) {
	repo := &fakeArchiveRepo{}
	svc := NewAlertArchiveService(repo, repo)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.History(context.Background(), dto.AlertHistoryRequest{StartTime: start, EndTime: start.Add(24 * time.Hour)})

	require.NoError(t, err)
	assert.Equal(t, "1 hour", repo.lastHistory.Interval)
	assert.Equal(t, "total", repo.lastHistory.GroupBy)
}
