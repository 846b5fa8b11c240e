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

// CommunicationController handles HTTP requests for the communications log
type CommunicationController struct {
	communicationService services.CommunicationService
	now                  services.Clock
	logger               zerolog.Logger
}

// NewCommunicationController creates a new CommunicationController
func NewCommunicationController(communicationService services.CommunicationService, now services.Clock, logger zerolog.Logger) *CommunicationController {
	if now == nil {
		now = time.Now
	}
	return &CommunicationController{
		communicationService: communicationService,
		now:                  now,
		logger:               logger,
	}
}

// GetCommunications handles the communications log listing
// @Summary List communications
// @Description Filters, sorts and pages the communications log. Search also matches the student's name.
// @Tags communications
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive match on content, staff member or student name"
// @Param studentId query string false "Only this student's communications"
// @Param type query string false "Channel" Enums(email, sms, call, meeting)
// @Param direction query string false "Direction" Enums(inbound, outbound)
// @Param staffMember query string false "Exact staff member"
// @Param sortBy query string false "Sort key" Enums(timestamp, type, direction, staffMember)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(25)
// @Success 200 {object} dto.APIResponse{data=dto.PageResponse{data=[]query.CommunicationView}} "Communications page"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications [get]
func (c *CommunicationController) GetCommunications(ctx *gin.Context) {
	result, err := c.communicationService.ListCommunications(ctx.Request.Context(), communicationQueryFromRequest(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPageResponse(result, c.now()), ""))
}

// GetCommunicationStats returns counters for the communications log
// @Summary Communication stats
// @Tags communications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=query.CommunicationStats} "Communication stats"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications/stats [get]
func (c *CommunicationController) GetCommunicationStats(ctx *gin.Context) {
	stats, err := c.communicationService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// GetStaffMembers lists the distinct staff members in the log
// @Summary Staff members
// @Tags communications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse{items=[]string}} "Staff members"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications/staff [get]
func (c *CommunicationController) GetStaffMembers(ctx *gin.Context) {
	staff, err := c.communicationService.ListStaffMembers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(staff, c.now()), ""))
}

// GetCommunication retrieves a communication by ID
// @Summary Get communication by ID
// @Tags communications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Success 200 {object} dto.APIResponse{data=query.CommunicationView} "Communication"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Communication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications/{id} [get]
func (c *CommunicationController) GetCommunication(ctx *gin.Context) {
	comm, err := c.communicationService.GetCommunication(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(comm, ""))
}

// CreateCommunication handles logging a communication
// @Summary Log communication
// @Description Records a communication with a student. Staff member defaults to the signed in user.
// @Tags communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCommunicationRequest true "Communication data"
// @Success 201 {object} dto.APIResponse{data=query.CommunicationView} "Communication logged"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications [post]
func (c *CommunicationController) CreateCommunication(ctx *gin.Context) {
	var req dto.CreateCommunicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	comm, err := c.communicationService.CreateCommunication(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("communicationID", comm.ID).
		Str("studentID", comm.StudentID).
		Msg("Communication logged via API")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comm, "Communication logged"))
}

// UpdateCommunication handles a partial communication update
// @Summary Update communication
// @Tags communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Param request body dto.UpdateCommunicationRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=query.CommunicationView} "Communication updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Communication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications/{id} [put]
func (c *CommunicationController) UpdateCommunication(ctx *gin.Context) {
	var req dto.UpdateCommunicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	comm, err := c.communicationService.UpdateCommunication(ctx.Request.Context(), ctx.Param("id"), req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(comm, "Communication updated"))
}

// DeleteCommunication handles removing a communication
// @Summary Delete communication
// @Tags communications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Communication ID"
// @Success 200 {object} dto.APIResponse "Communication deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Communication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications/{id} [delete]
func (c *CommunicationController) DeleteCommunication(ctx *gin.Context) {
	if err := c.communicationService.DeleteCommunication(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Communication deleted"))
}
