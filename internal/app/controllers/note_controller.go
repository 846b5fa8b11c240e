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

// NoteController handles HTTP requests for internal staff notes
type NoteController struct {
	noteService services.NoteService
	now         services.Clock
	logger      zerolog.Logger
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService, now services.Clock, logger zerolog.Logger) *NoteController {
	if now == nil {
		now = time.Now
	}
	return &NoteController{
		noteService: noteService,
		now:         now,
		logger:      logger,
	}
}

// GetStudentNotes lists the notes on a student
// @Summary List student notes
// @Description Notes on the student, newest first
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse{items=[]models.Note}} "Notes"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/notes [get]
func (c *NoteController) GetStudentNotes(ctx *gin.Context) {
	notes, err := c.noteService.ListNotes(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewListResponse(notes, c.now()), ""))
}

// CreateNote adds a note to a student
// @Summary Add note
// @Description Adds a note authored by the signed in staff user
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.CreateNoteRequest true "Note data"
// @Success 201 {object} dto.APIResponse{data=models.Note} "Note added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	var req dto.CreateNoteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	note, err := c.noteService.CreateNote(ctx.Request.Context(), req.ToModel(ctx.Param("id")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(note, "Note added"))
}

// UpdateNote handles a partial note update
// @Summary Update note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Param request body dto.UpdateNoteRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Note} "Note updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	var req dto.UpdateNoteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	note, err := c.noteService.UpdateNote(ctx.Request.Context(), ctx.Param("id"), req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(note, "Note updated"))
}

// DeleteNote handles removing a note
// @Summary Delete note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {object} dto.APIResponse "Note deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	if err := c.noteService.DeleteNote(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Note deleted"))
}
