package service

import (
	"context"
	"errors"
	"testing"

	"alertdesk-backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAlertSource struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeAlertSource) Fetch(ctx context.Context) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

func (f *fakeAlertSource) Name() string { return "fake" }

const sampleEve = `[
	{"timestamp":"2024-05-02T10:00:00.000000+0000","proto":"TCP","event_type":"alert","alert":{"severity":2,"signature":"ET SCAN"}},
	{"timestamp":"2024-05-01T09:00:00.000000+0000","proto":"TCP","event_type":"alert","alert":{"severity":1}},
	{"timestamp":"2024-05-02T11:00:00.000000+0000","proto":"UDP","event_type":"dns"}
]`

func TestAlertDashboardService_Views(t *testing.T) {
	svc := NewAlertDashboardService(&fakeAlertSource{data: []byte(sampleEve)})
	ctx := context.Background()

	protocols := svc.ByProtocol(ctx)
	assert.Equal(t, dto.ViewStatusReady, protocols.Status)
	assert.Equal(t, []interface{}{"TCP", "UDP"}, protocols.Chart.Labels)
	assert.Equal(t, []int{2, 1}, protocols.Chart.Datasets[0].Data)
	assert.Equal(t, 3, protocols.Total)

	severities := svc.BySeverity(ctx)
	assert.Equal(t, []interface{}{2, 1}, severities.Chart.Labels)
	assert.Equal(t, []int{1, 1}, severities.Chart.Datasets[0].Data)
	assert.Equal(t, "Number of Alerts by Severity", severities.Chart.Datasets[0].Label)

	timeline := svc.OverTime(ctx)
	assert.Equal(t, []interface{}{"2024-05-01", "2024-05-02"}, timeline.Chart.Labels)
	assert.Equal(t, []int{1, 2}, timeline.Chart.Datasets[0].Data)
	assert.True(t, timeline.Chart.Datasets[0].Fill)
}

func TestAlertDashboardService_DashboardFetchesOnce(t *testing.T) {
	source := &fakeAlertSource{data: []byte(sampleEve)}
	svc := NewAlertDashboardService(source)

	resp := svc.Dashboard(context.Background())

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, dto.ViewStatusReady, resp.Status)
	assert.Equal(t, 3, resp.Protocols.Total)
	assert.Equal(t, 2, resp.Severities.Total)
	assert.Equal(t, 3, resp.Timeline.Total)
}

func TestAlertDashboardService_ErrorState(t *testing.T) {
	tests := []struct {
		name   string
		source *fakeAlertSource
	}{
		{name: "fetch failure", source: &fakeAlertSource{err: errors.New("network response was not ok")}},
		{name: "not json", source: &fakeAlertSource{data: []byte("<html>")}},
		{name: "not an array", source: &fakeAlertSource{data: []byte(`{"proto":"TCP"}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAlertDashboardService(tt.source)

			view := svc.ByProtocol(context.Background())
			assert.Equal(t, dto.ViewStatusError, view.Status)
			assert.NotEmpty(t, view.Error)
			assert.Empty(t, view.Chart.Labels)
			assert.Zero(t, view.Total)

			dash := svc.Dashboard(context.Background())
			assert.Equal(t, dto.ViewStatusError, dash.Status)
			assert.Equal(t, dto.ViewStatusError, dash.Timeline.Status)

			points := svc.Points(context.Background())
			assert.Equal(t, dto.ViewStatusError, points.Status)
			assert.NotNil(t, points.Points)
		})
	}
}

func TestAlertDashboardService_EmptyLog(t *testing.T) {
	svc := NewAlertDashboardService(&fakeAlertSource{data: []byte(`[]`)})

	view := svc.OverTime(context.Background())

	assert.Equal(t, dto.ViewStatusReady, view.Status)
	assert.Empty(t, view.Chart.Labels)
	assert.Empty(t, view.Chart.Datasets[0].Data)
}

func TestAlertDashboardService_Analysis(t *testing.T) {
	svc := NewAlertDashboardService(&fakeAlertSource{})

	resp, err := svc.Analysis(context.Background(), dto.AnalysisRequest{Data: &dto.ChartData{
		Labels:   []interface{}{"TCP", "UDP", "ICMP"},
		Datasets: []dto.ChartDataset{{Label: "Number of Alerts", Data: []int{4, 9, 1}}},
	}})

	require.NoError(t, err)
	assert.Equal(t, "Alert Details", resp.Title)
	assert.Equal(t, 14, resp.Total)
	assert.Equal(t, "UDP", resp.PeakLabel)
	assert.Equal(t, 9, resp.PeakValue)

	_, err = svc.Analysis(context.Background(), dto.AnalysisRequest{})
	assert.ErrorIs(t, err, ErrMissingAnalysisData)
}

func TestAlertDashboardService_AnalysisEmptyFirstLabel(t *testing.T) {
	svc := NewAlertDashboardService(&fakeAlertSource{})

	resp, err := svc.Analysis(context.Background(), dto.AnalysisRequest{Data: &dto.ChartData{
		Labels:   []interface{}{"", "TCP", "UDP"},
		Datasets: []dto.ChartDataset{{Label: "Number of Alerts", Data: []int{7, 3, 5}}},
	}})

	require.NoError(t, err)
	assert.Equal(t, "", resp.PeakLabel)
	assert.Equal(t, 7, resp.PeakValue)
	assert.Equal(t, 15, resp.Total)
}
