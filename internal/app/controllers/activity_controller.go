package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/admissions-crm/internal/app/models/dto"
	"github.com/yigit/admissions-crm/internal/app/services"
	"github.com/yigit/admissions-crm/internal/middleware"
)

// ActivityController handles HTTP requests for the student activity log
type ActivityController struct {
	activityService services.ActivityService
	now             services.Clock
	logger          zerolog.Logger
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService, now services.Clock, logger zerolog.Logger) *ActivityController {
	if now == nil {
		now = time.Now
	}
	return &ActivityController{
		activityService: activityService,
		now:             now,
		logger:          logger,
	}
}

// GetStudentActivities lists a student's activity
// @Summary List student activity
// @Description Activity entries for the student, newest first
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse{items=[]models.Activity}} "Activities"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/activities [get]
func (c *ActivityController) GetStudentActivities(ctx *gin.Context) {
	activities, err := c.activityService.ListActivities(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(activities, c.now()), ""))
}

// RecordActivity appends an entry to a student's activity log
// @Summary Record activity
// @Description Appends an activity entry and moves the student's lastActive forward
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.RecordActivityRequest true "Activity data"
// @Success 201 {object} dto.APIResponse{data=models.Activity} "Activity recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/activities [post]
func (c *ActivityController) RecordActivity(ctx *gin.Context) {
	var req dto.RecordActivityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	activity, err := c.activityService.RecordActivity(ctx.Request.Context(), req.ToModel(ctx.Param("id")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(activity, "Activity recorded"))
}
