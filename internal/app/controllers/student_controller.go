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

// StudentController handles HTTP requests related to students
type StudentController struct {
	studentService services.StudentService
	now            services.Clock
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, now services.Clock, logger zerolog.Logger) *StudentController {
	if now == nil {
		now = time.Now
	}
	return &StudentController{
		studentService: studentService,
		now:            now,
		logger:         logger,
	}
}

// GetStudents handles the student directory listing
// @Summary List students
// @Description Filters, sorts and pages the student directory. Unknown filter values are ignored.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive match on name, email or country"
// @Param status query string false "Application status" Enums(Exploring, Shortlisting, Applying, Submitted)
// @Param country query string false "Exact country"
// @Param grade query string false "School year" Enums(Freshman, Sophomore, Junior, Senior)
// @Param lastActiveFilter query string false "Activity recency" Enums(all, week, month)
// @Param sortBy query string false "Sort key" Enums(name, email, country, grade, gpa, satEnglish, satMath, act, tuitionBudget, applicationStatus, createdAt, lastActive)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(25)
// @Success 200 {object} dto.APIResponse{data=dto.PageResponse{data=[]models.Student}} "Students page"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	result, err := c.studentService.ListStudents(ctx.Request.Context(), studentQueryFromRequest(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPageResponse(result, c.now()), ""))
}

// GetStudentStats returns dashboard counters for the student directory
// @Summary Student stats
// @Description Totals, status distribution and recency counters evaluated at request time
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=query.StudentStats} "Student stats"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/stats [get]
func (c *StudentController) GetStudentStats(ctx *gin.Context) {
	stats, err := c.studentService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// GetCountries lists the distinct student countries
// @Summary Student countries
// @Description Distinct countries across all students, sorted
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse{items=[]string}} "Countries"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/countries [get]
func (c *StudentController) GetCountries(ctx *gin.Context) {
	countries, err := c.studentService.ListCountries(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(countries, c.now()), ""))
}

// GetStudent retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// GetStudentTimeline returns a student with their communications, notes and activity
// @Summary Student timeline
// @Description The student record plus its communications, notes and activities, newest first
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=services.Timeline} "Timeline"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/timeline [get]
func (c *StudentController) GetStudentTimeline(ctx *gin.Context) {
	timeline, err := c.studentService.GetTimeline(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(timeline, ""))
}

// CreateStudent handles adding a student
// @Summary Create student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student data"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req.ToModel(c.now()))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentID", student.ID).Msg("Student created via API")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student created"))
}

// UpdateStudent handles a partial student update
// @Summary Update student
// @Description Applies the supplied fields; omitted fields are kept. An invalid result leaves the record unchanged.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), req.ToPatch(c.now()))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student updated"))
}

// DeleteStudent handles removing a student
// @Summary Delete student
// @Description Removes the student record. Linked communications, notes and activities are kept.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentID", id).Msg("Student deleted via API")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student deleted"))
}
