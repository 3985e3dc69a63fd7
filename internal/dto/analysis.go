package dto

// AnalysisRequest carries the chart the client navigated to the detailed
// analysis page with.
type AnalysisRequest struct {
	Data *ChartData `json:"data" binding:"required"`
}

type AnalysisResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Chart       ChartData `json:"chart"`
	Total       int       `json:"total"`
	PeakLabel   string    `json:"peakLabel,omitempty"`
	PeakValue   int       `json:"peakValue"`
}
