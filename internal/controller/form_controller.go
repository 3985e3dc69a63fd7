package controller

import (
	"errors"
	"net/http"

	"alertdesk-backend/internal/dto"
	"alertdesk-backend/internal/form"
	"alertdesk-backend/internal/model"
	"alertdesk-backend/internal/service"
	"alertdesk-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type FormController struct {
	formService service.FormService
}

func NewFormController(formService service.FormService) *FormController {
	return &FormController{
		formService: formService,
	}
}

// RegisterFormRoutes mounts the form API. submitLimit guards the write paths.
func RegisterFormRoutes(router *gin.Engine, controller *FormController, submitLimit gin.HandlerFunc) {
	v1Forms := router.Group("/api/v1/forms")
	{
		v1Forms.GET("", controller.ListForms)
		v1Forms.GET("/:form/schema", controller.GetSchema)
		v1Forms.POST("/:form/validate", controller.ValidateForm)
		v1Forms.POST("/:form/sessions", submitLimit, controller.OpenSession)
		v1Forms.GET("/sessions/:id", controller.GetSession)
		v1Forms.POST("/sessions/:id/events", controller.ApplyEvent)
		v1Forms.POST("/sessions/:id/submit", submitLimit, controller.SubmitSession)
		v1Forms.DELETE("/sessions/:id", controller.CloseSession)
	}
}

// ListForms godoc
// @Summary      List forms
// @Tags         forms
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/v1/forms [get]
func (c *FormController) ListForms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, form.Names())
}

// GetSchema godoc
// @Summary      Form schema
// @Description  Returns the form definition and the fields visible for the discriminant value passed as a query parameter (e.g. ?position=Designer).
// @Tags         forms
// @Produce      json
// @Param        form  path      string  true  "Form name" Enums(event-registration, job-application, survey)
// @Success      200   {object}  dto.FormSchemaResponse
// @Failure      404   {object}  model.Response "Unknown form"
// @Router       /api/v1/forms/{form}/schema [get]
func (c *FormController) GetSchema(ctx *gin.Context) {
	state := form.State{}
	for key, values := range ctx.Request.URL.Query() {
		if len(values) > 0 {
			state[key] = form.Text(values[0])
		}
	}
	resp, err := c.formService.Schema(ctx.Param("form"), state)
	if err != nil {
		writeFormError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ValidateForm godoc
// @Summary      Validate form values
// @Description  Stateless validation of a full form state. Returns 422 with the field errors when invalid.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        form     path      string                 true  "Form name"
// @Param        request  body      dto.FormStateRequest   true  "Form state"
// @Success      200      {object}  dto.ValidationResponse
// @Failure      422      {object}  dto.ValidationResponse
// @Failure      404      {object}  model.Response "Unknown form"
// @Router       /api/v1/forms/{form}/validate [post]
func (c *FormController) ValidateForm(ctx *gin.Context) {
	var req dto.FormStateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}
	errs, err := c.formService.Validate(ctx.Param("form"), req.State)
	if err != nil {
		writeFormError(ctx, err)
		return
	}
	status := http.StatusOK
	if !errs.Valid() {
		status = http.StatusUnprocessableEntity
	}
	ctx.JSON(status, dto.ValidationResponse{Valid: errs.Valid(), Errors: errs})
}

// OpenSession godoc
// @Summary      Open a form session
// @Tags         forms
// @Produce      json
// @Param        form  path      string  true  "Form name"
// @Success      201   {object}  form.Session
// @Failure      404   {object}  model.Response "Unknown form"
// @Failure      429   {object}  model.Response "Too many requests"
// @Router       /api/v1/forms/{form}/sessions [post]
func (c *FormController) OpenSession(ctx *gin.Context) {
	session, err := c.formService.Open(ctx.Request.Context(), ctx.Param("form"))
	if err != nil {
		writeFormError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// GetSession godoc
// @Summary      Get a form session
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  form.Session
// @Failure      404  {object}  model.Response "Unknown session"
// @Router       /api/v1/forms/sessions/{id} [get]
func (c *FormController) GetSession(ctx *gin.Context) {
	session, err := c.formService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeFormError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// ApplyEvent godoc
// @Summary      Apply a field edit
// @Description  field_changed replaces a value; option_toggled adds or removes one checkbox option.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id       path      string      true  "Session ID"
// @Param        request  body      form.Event  true  "Edit event"
// @Success      200      {object}  form.Session
// @Failure      400      {object}  model.Response "Invalid event"
// @Failure      404      {object}  model.Response "Unknown session"
// @Failure      409      {object}  model.Response "Form already submitted"
// @Router       /api/v1/forms/sessions/{id}/events [post]
func (c *FormController) ApplyEvent(ctx *gin.Context) {
	var event form.Event
	if err := ctx.ShouldBindJSON(&event); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}
	if event.Type != form.FieldChanged && event.Type != form.OptionToggled {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Unknown event type: "+string(event.Type), nil))
		return
	}
	session, err := c.formService.Apply(ctx.Request.Context(), ctx.Param("id"), event)
	if err != nil {
		writeFormError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// SubmitSession godoc
// @Summary      Submit a form session
// @Description  Validates the session. Invalid: 422 with the session and its errors. Valid: the session becomes submitted; surveys start fetching follow-up questions.
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  form.Session
// @Failure      404  {object}  model.Response "Unknown session"
// @Failure      409  {object}  model.Response "Form already submitted"
// @Failure      422  {object}  form.Session
// @Router       /api/v1/forms/sessions/{id}/submit [post]
func (c *FormController) SubmitSession(ctx *gin.Context) {
	session, err := c.formService.Submit(ctx.Request.Context(), ctx.Param("id"))
	if errors.Is(err, service.ErrValidationFailed) {
		ctx.JSON(http.StatusUnprocessableEntity, session)
		return
	}
	if err != nil {
		writeFormError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// CloseSession godoc
// @Summary      Close a form session
// @Description  Removes the session and cancels any pending follow-up fetch.
// @Tags         forms
// @Param        id   path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  model.Response "Unknown session"
// @Router       /api/v1/forms/sessions/{id} [delete]
func (c *FormController) CloseSession(ctx *gin.Context) {
	if err := c.formService.Close(ctx.Request.Context(), ctx.Param("id")); err != nil {
		writeFormError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func writeFormError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, form.ErrUnknownForm), errors.Is(err, store.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, model.NewResponse(err.Error(), nil))
	case errors.Is(err, form.ErrAlreadySubmitted):
		ctx.JSON(http.StatusConflict, model.NewResponse(err.Error(), nil))
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Form request failed")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Internal server error", nil))
	}
}
