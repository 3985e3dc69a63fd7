package controller

import (
	"errors"
	"net/http"

	"alertdesk-backend/internal/dto"
	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AlertController struct {
	dashboardService service.AlertDashboardService
}

func NewAlertController(dashboardService service.AlertDashboardService) *AlertController {
	return &AlertController{
		dashboardService: dashboardService,
	}
}

func RegisterAlertRoutes(router *gin.Engine, controller *AlertController) {
	v1Alerts := router.Group("/api/v1/alerts")
	{
		v1Alerts.GET("/protocols", controller.GetAlertsByProtocol)
		v1Alerts.GET("/severities", controller.GetAlertsBySeverity)
		v1Alerts.GET("/timeline", controller.GetAlertsOverTime)
		v1Alerts.GET("/dashboard", controller.GetDashboard)
		v1Alerts.GET("/points", controller.GetAlertPoints)
		v1Alerts.POST("/analysis", controller.PostAnalysis)
	}
}

// GetAlertsByProtocol godoc
// @Summary      Alerts by protocol
// @Description  Counts alert log records per network protocol (radar chart). Fetch or parse failures are reported with status "error".
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.ChartView
// @Router       /api/v1/alerts/protocols [get]
func (c *AlertController) GetAlertsByProtocol(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.dashboardService.ByProtocol(ctx.Request.Context()))
}

// GetAlertsBySeverity godoc
// @Summary      Alerts by severity
// @Description  Counts alerts per severity level (bar chart).
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.ChartView
// @Router       /api/v1/alerts/severities [get]
func (c *AlertController) GetAlertsBySeverity(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.dashboardService.BySeverity(ctx.Request.Context()))
}

// GetAlertsOverTime godoc
// @Summary      Alerts over time
// @Description  Counts alert log records per UTC day, ascending (line chart).
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.ChartView
// @Router       /api/v1/alerts/timeline [get]
func (c *AlertController) GetAlertsOverTime(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.dashboardService.OverTime(ctx.Request.Context()))
}

// GetDashboard godoc
// @Summary      Alert dashboard
// @Description  Protocol, severity and timeline views computed from a single fetch of the alert log.
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/v1/alerts/dashboard [get]
func (c *AlertController) GetDashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.dashboardService.Dashboard(ctx.Request.Context()))
}

// GetAlertPoints godoc
// @Summary      Alert scatter points
// @Description  One (timestamp, severity) point per alert.
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.PointsResponse
// @Router       /api/v1/alerts/points [get]
func (c *AlertController) GetAlertPoints(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.dashboardService.Points(ctx.Request.Context()))
}

// PostAnalysis godoc
// @Summary      Detailed alert analysis
// @Description  Builds the detailed analysis page from the chart data the client navigated with.
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalysisRequest  true  "Chart data"
// @Success      200      {object}  dto.AnalysisResponse
// @Failure      400      {object}  model.Response "Missing or invalid chart data"
// @Router       /api/v1/alerts/analysis [post]
func (c *AlertController) PostAnalysis(ctx *gin.Context) {
	var req dto.AnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid analysis request")
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}

	result, err := c.dashboardService.Analysis(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingAnalysisData) {
			ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
			return
		}
		log.Error().Err(err).Msg("Error building alert analysis")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Failed to build analysis", nil))
		return
	}
	ctx.JSON(http.StatusOK, result)
}
