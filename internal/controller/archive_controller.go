package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"alertdesk-backend/internal/dto"
	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/service"
	"alertdesk-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ArchiveController struct {
	archiveService service.AlertArchiveService
}

func NewArchiveController(archiveService service.AlertArchiveService) *ArchiveController {
	return &ArchiveController{
		archiveService: archiveService,
	}
}

func RegisterArchiveRoutes(router *gin.Engine, controller *ArchiveController) {
	v1Alerts := router.Group("/api/v1/alerts")
	{
		v1Alerts.GET("/archive", controller.SearchArchive)
		v1Alerts.GET("/history", controller.GetHistory)
	}
}

// SearchArchive godoc
// @Summary      Search archived alerts
// @Description  Searches ingested alerts by time range, protocol, severity and event type.
// @Tags         archive
// @Produce      json
// @Param        startTime   query     string  true   "Start time (ISO 8601 or epoch ms)"
// @Param        endTime     query     string  true   "End time (ISO 8601 or epoch ms)"
// @Param        protocols   query     string  false  "Comma-separated protocols, e.g. TCP,UDP"
// @Param        severities  query     string  false  "Comma-separated severity levels, e.g. 1,2"
// @Param        eventTypes  query     string  false  "Comma-separated eve event types"
// @Param        page        query     int     false  "Page number" default(1)
// @Param        size        query     int     false  "Page size" default(100)
// @Success      200         {object}  dto.AlertSearchResponse
// @Failure      400         {object}  model.Response "Invalid query parameters"
// @Failure      500         {object}  model.Response "Internal server error"
// @Router       /api/v1/alerts/archive [get]
func (c *ArchiveController) SearchArchive(ctx *gin.Context) {
	req, err := parseSearchParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
		return
	}
	result, err := c.archiveService.Search(ctx.Request.Context(), req)
	if err != nil {
		writeArchiveError(ctx, err, "Failed to search alerts")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetHistory godoc
// @Summary      Alert history
// @Description  Alert counts per time bucket, optionally split by protocol, severity or event type.
// @Tags         archive
// @Produce      json
// @Param        startTime  query     string  true   "Start time (ISO 8601 or epoch ms)"
// @Param        endTime    query     string  true   "End time (ISO 8601 or epoch ms)"
// @Param        interval   query     string  false  "Bucket width" Enums(5 minute, 15 minute, 1 hour, 6 hour, 1 day)
// @Param        groupBy    query     string  false  "Series split" Enums(proto, severity, event_type, total)
// @Success      200        {object}  dto.AlertHistoryResponse
// @Failure      400        {object}  model.Response "Invalid query parameters"
// @Failure      500        {object}  model.Response "Internal server error"
// @Router       /api/v1/alerts/history [get]
func (c *ArchiveController) GetHistory(ctx *gin.Context) {
	start, end, err := parseTimeRange(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
		return
	}
	result, err := c.archiveService.History(ctx.Request.Context(), dto.AlertHistoryRequest{
		StartTime: start,
		EndTime:   end,
		Interval:  ctx.Query("interval"),
		GroupBy:   ctx.Query("groupBy"),
	})
	if err != nil {
		writeArchiveError(ctx, err, "Failed to get alert history")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func parseTimeRange(ctx *gin.Context) (start, end time.Time, err error) {
	start, err = util.ParseTimeFlexible(ctx.Query("startTime"))
	if err != nil {
		return start, end, errors.New("invalid startTime: " + err.Error())
	}
	end, err = util.ParseTimeFlexible(ctx.Query("endTime"))
	if err != nil {
		return start, end, errors.New("invalid endTime: " + err.Error())
	}
	return start, end, nil
}

func parseSearchParams(ctx *gin.Context) (dto.AlertSearchRequest, error) {
	start, end, err := parseTimeRange(ctx)
	if err != nil {
		return dto.AlertSearchRequest{}, err
	}
	severities, err := util.SplitCSVInts(ctx.Query("severities"))
	if err != nil {
		return dto.AlertSearchRequest{}, errors.New("invalid severities: " + err.Error())
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "100"))
	return dto.AlertSearchRequest{
		StartTime:  start,
		EndTime:    end,
		Protocols:  util.SplitCSV(ctx.Query("protocols")),
		Severities: severities,
		EventTypes: util.SplitCSV(ctx.Query("eventTypes")),
		Page:       page,
		Size:       size,
	}, nil
}

func writeArchiveError(ctx *gin.Context, err error, message string) {
	if errors.Is(err, service.ErrTimeRangeRequired) || errors.Is(err, service.ErrTimeRangeInverted) {
		ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
		return
	}
	log.Error().Err(err).Msg(message)
	ctx.JSON(http.StatusInternalServerError, model.NewResponse(message, nil))
}
