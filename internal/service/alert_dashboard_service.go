package service

import (
	"context"
	"errors"
	"fmt"

	"alertdesk-backend/internal/aggregator"
	"alertdesk-backend/internal/dto"
	"alertdesk-backend/internal/metrics"
	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/parser"
	"alertdesk-backend/internal/repository"

	"github.com/rs/zerolog/log"
)

var ErrMissingAnalysisData = errors.New("no chart data to analyse")

const (
	protocolTitle       = "Alerts by Protocol"
	protocolDescription = "This radar chart displays the number of alerts by protocol. It provides a visual representation of which network protocols are most frequently associated with alerts, aiding in the identification of potentially problematic protocols."
	severityTitle       = "Alerts by Severity"
	severityDescription = "This bar chart displays the number of alerts categorized by their severity levels. Higher severity levels indicate more critical alerts that require immediate attention. By understanding the distribution of alert severities, security teams can prioritize their response efforts."
	timelineTitle       = "Alerts Over Time"
	timelineDescription = "This chart displays the number of alerts over time. Analyzing trends in alert frequency can provide valuable insights into network security. By monitoring the alerts, we can identify potential security breaches and take preventive measures."
	analysisTitle       = "Alert Details"
	analysisDescription = "Detailed analysis of alerts generated by the IDS. Use the various visualizations to delve deeper into the specifics of each alert."
)

type AlertDashboardService interface {
	ByProtocol(ctx context.Context) *dto.ChartView
	BySeverity(ctx context.Context) *dto.ChartView
	OverTime(ctx context.Context) *dto.ChartView
	Dashboard(ctx context.Context) *dto.DashboardResponse
	Points(ctx context.Context) *dto.PointsResponse
	Analysis(ctx context.Context, req dto.AnalysisRequest) (*dto.AnalysisResponse, error)
}

type alertDashboardService struct {
	source repository.AlertSource
}

func NewAlertDashboardService(source repository.AlertSource) AlertDashboardService {
	return &alertDashboardService{
		source: source,
	}
}

// loadRecords fetches and decodes the alert log once. Failures are returned as
// a message for the page-level error state; they are never retried.
func (s *alertDashboardService) loadRecords(ctx context.Context) ([]model.AlertRecord, error) {
	data, err := s.source.Fetch(ctx)
	if err != nil {
		metrics.AlertFetchFailures.Inc()
		log.Error().Err(err).Str("source", s.source.Name()).Msg("Error fetching alert data")
		return nil, err
	}
	records, err := parser.DecodeAlertLog(data)
	if err != nil {
		metrics.AlertFetchFailures.Inc()
		log.Error().Err(err).Str("source", s.source.Name()).Msg("Alert data is not valid")
		return nil, err
	}
	metrics.AlertRecordsAggregated.Add(float64(len(records)))
	log.Debug().Int("records", len(records)).Str("source", s.source.Name()).Msg("Loaded alert records")
	return records, nil
}

func (s *alertDashboardService) ByProtocol(ctx context.Context) *dto.ChartView {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return errorView(protocolTitle, protocolDescription, "Number of Alerts", err)
	}
	return protocolView(records)
}

func (s *alertDashboardService) BySeverity(ctx context.Context) *dto.ChartView {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return errorView(severityTitle, severityDescription, "Number of Alerts by Severity", err)
	}
	return severityView(records)
}

func (s *alertDashboardService) OverTime(ctx context.Context) *dto.ChartView {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return errorView(timelineTitle, timelineDescription, "Alerts Over Time", err)
	}
	return timelineView(records)
}

// Dashboard computes the three views over a single fetch.
func (s *alertDashboardService) Dashboard(ctx context.Context) *dto.DashboardResponse {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return &dto.DashboardResponse{
			Status:     dto.ViewStatusError,
			Error:      err.Error(),
			Protocols:  errorView(protocolTitle, protocolDescription, "Number of Alerts", err),
			Severities: errorView(severityTitle, severityDescription, "Number of Alerts by Severity", err),
			Timeline:   errorView(timelineTitle, timelineDescription, "Alerts Over Time", err),
		}
	}
	return &dto.DashboardResponse{
		Status:     dto.ViewStatusReady,
		Protocols:  protocolView(records),
		Severities: severityView(records),
		Timeline:   timelineView(records),
	}
}

func (s *alertDashboardService) Points(ctx context.Context) *dto.PointsResponse {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return &dto.PointsResponse{Status: dto.ViewStatusError, Error: err.Error(), Points: []aggregator.Point{}}
	}
	return &dto.PointsResponse{Status: dto.ViewStatusReady, Points: aggregator.Points(records)}
}

// Analysis builds the detailed-analysis page from the chart the caller
// navigated with; it does not refetch the alert log.
func (s *alertDashboardService) Analysis(ctx context.Context, req dto.AnalysisRequest) (*dto.AnalysisResponse, error) {
	if req.Data == nil || len(req.Data.Datasets) == 0 {
		return nil, ErrMissingAnalysisData
	}
	chart := *req.Data
	resp := &dto.AnalysisResponse{
		Title:       analysisTitle,
		Description: analysisDescription,
		Chart:       chart,
	}

	values := chart.Datasets[0].Data
	found := false
	for i, v := range values {
		resp.Total += v
		if i < len(chart.Labels) && (!found || v > resp.PeakValue) {
			resp.PeakLabel = labelString(chart.Labels[i])
			resp.PeakValue = v
			found = true
		}
	}
	log.Info().Int("labels", len(chart.Labels)).Int("total", resp.Total).Msg("Built alert analysis")
	return resp, nil
}

func protocolView(records []model.AlertRecord) *dto.ChartView {
	series := aggregator.AlertsByProtocol(records)
	return &dto.ChartView{
		Title:       protocolTitle,
		Description: protocolDescription,
		Status:      dto.ViewStatusReady,
		Chart:       dto.NewRadarChart(series),
		Total:       aggregator.Total(series),
	}
}

func severityView(records []model.AlertRecord) *dto.ChartView {
	series := aggregator.AlertsBySeverity(records)
	return &dto.ChartView{
		Title:       severityTitle,
		Description: severityDescription,
		Status:      dto.ViewStatusReady,
		Chart:       dto.NewBarChart(series),
		Total:       aggregator.Total(series),
	}
}

func timelineView(records []model.AlertRecord) *dto.ChartView {
	series := aggregator.AlertsOverTime(records)
	return &dto.ChartView{
		Title:       timelineTitle,
		Description: timelineDescription,
		Status:      dto.ViewStatusReady,
		Chart:       dto.NewLineChart(series),
		Total:       aggregator.Total(series),
	}
}

func errorView(title, description, datasetLabel string, err error) *dto.ChartView {
	return &dto.ChartView{
		Title:       title,
		Description: description,
		Status:      dto.ViewStatusError,
		Error:       err.Error(),
		Chart:       dto.EmptyChart(datasetLabel),
	}
}

func labelString(label interface{}) string {
	switch v := label.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
