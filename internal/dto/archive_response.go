package dto

import "alertdesk-backend/internal/model"

type AlertSearchResponse struct {
	Alerts     []model.AlertRecord `json:"alerts"`
	TotalCount int64               `json:"totalCount"`
	Page       int                 `json:"page"`
	Size       int                 `json:"size"`
}

type TimeseriesDataPoint struct {
	Timestamp int64 `json:"timestamp"` // epoch ms
	Value     int64 `json:"value"`
}

type TimeseriesSeries struct {
	Name string                `json:"name"` // e.g. "TCP", "3", "total"
	Data []TimeseriesDataPoint `json:"data"`
}

type AlertHistoryResponse struct {
	Series []TimeseriesSeries `json:"series"`
}
