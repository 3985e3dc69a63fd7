package dto

import "alertdesk-backend/internal/aggregator"

const (
	ViewStatusReady = "ready"
	ViewStatusError = "error"
)

// ChartDataset mirrors a Chart.js dataset.
type ChartDataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	BorderColor     string `json:"borderColor,omitempty"`
	BorderWidth     int    `json:"borderWidth,omitempty"`
	Fill            bool   `json:"fill,omitempty"`
}

// ChartData mirrors the Chart.js `data` object (labels + datasets).
type ChartData struct {
	Labels   []interface{}  `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartView is one dashboard panel. Status "error" carries the page-level
// error message and an empty chart.
type ChartView struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	Chart       ChartData `json:"chart"`
	Total       int       `json:"total"`
}

type DashboardResponse struct {
	Status     string     `json:"status"`
	Error      string     `json:"error,omitempty"`
	Protocols  *ChartView `json:"protocols"`
	Severities *ChartView `json:"severities"`
	Timeline   *ChartView `json:"timeline"`
}

type PointsResponse struct {
	Status string             `json:"status"`
	Error  string             `json:"error,omitempty"`
	Points []aggregator.Point `json:"points"`
}

func NewRadarChart(series aggregator.Series[string]) ChartData {
	return ChartData{
		Labels: labelsOf(series.Labels),
		Datasets: []ChartDataset{{
			Label:           "Number of Alerts",
			Data:            series.Values,
			BackgroundColor: "rgba(75, 192, 192, 0.2)",
			BorderColor:     "rgba(75, 192, 192, 1)",
			BorderWidth:     1,
		}},
	}
}

func NewBarChart(series aggregator.Series[int]) ChartData {
	return ChartData{
		Labels: labelsOf(series.Labels),
		Datasets: []ChartDataset{{
			Label:           "Number of Alerts by Severity",
			Data:            series.Values,
			BackgroundColor: "rgba(255, 99, 132, 0.6)",
		}},
	}
}

func NewLineChart(series aggregator.Series[string]) ChartData {
	return ChartData{
		Labels: labelsOf(series.Labels),
		Datasets: []ChartDataset{{
			Label:           "Alerts Over Time",
			Data:            series.Values,
			BackgroundColor: "rgba(75, 192, 192, 0.6)",
			BorderColor:     "rgba(75, 192, 192, 1)",
			Fill:            true,
		}},
	}
}

// EmptyChart is what an errored panel renders.
func EmptyChart(label string) ChartData {
	return ChartData{
		Labels:   []interface{}{},
		Datasets: []ChartDataset{{Label: label, Data: []int{}}},
	}
}

func labelsOf[K comparable](labels []K) []interface{} {
	out := make([]interface{}, len(labels))
	for i, l := range labels {
		out[i] = l
	}
	return out
}
