package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yigit/admissions-crm/internal/app/models"
)

// CollegeRequest is a college list entry in a create or update request
type CollegeRequest struct {
	Name   string               `json:"name" binding:"required" example:"Duke University"`
	City   string               `json:"city" example:"Durham"`
	State  string               `json:"state" example:"NC"`
	Status models.CollegeStatus `json:"status" binding:"required,oneof=Exploring Shortlisted Applying Applied Submitted" example:"Shortlisted"`
}

func (r CollegeRequest) toModel(addedAt time.Time) models.College {
	return models.College{
		ID:      uuid.NewString(),
		Name:    r.Name,
		City:    r.City,
		State:   r.State,
		Status:  r.Status,
		AddedAt: addedAt,
	}
}

func collegesToModel(reqs []CollegeRequest, addedAt time.Time) []models.College {
	if reqs == nil {
		return nil
	}
	colleges := make([]models.College, 0, len(reqs))
	for _, r := range reqs {
		colleges = append(colleges, r.toModel(addedAt))
	}
	return colleges
}

// CreateStudentRequest represents the data for adding a student
type CreateStudentRequest struct {
	Name              string                   `json:"name" binding:"required,min=2,max=100" example:"Emma Smith"`
	Email             string                   `json:"email" binding:"required,email" example:"emma.smith@email.com"`
	Phone             string                   `json:"phone" binding:"required" example:"+1-555-123-4567"`
	Country           string                   `json:"country" binding:"required" example:"Canada"`
	Grade             models.SchoolYear        `json:"grade" binding:"required,oneof=Freshman Sophomore Junior Senior" example:"Junior"`
	GPA               float64                  `json:"gpa" binding:"gte=0,lte=4.5" example:"3.85"`
	SATEnglish        *int                     `json:"satEnglish,omitempty" binding:"omitempty,gte=400,lte=800" example:"720"`
	SATMath           *int                     `json:"satMath,omitempty" binding:"omitempty,gte=400,lte=800" example:"760"`
	ACT               *int                     `json:"act,omitempty" binding:"omitempty,gte=1,lte=36" example:"33"`
	FieldOfStudy      string                   `json:"fieldOfStudy" example:"Computer Science"`
	TuitionBudget     int                      `json:"tuitionBudget" binding:"gte=0" example:"45000"`
	PreferredRegions  []models.Region          `json:"preferredRegions" binding:"omitempty,dive,oneof=Northeast Midwest South West"`
	ClassStrength     string                   `json:"classStrength,omitempty" example:"Medium (5,000-15,000)"`
	ApplicationStatus models.ApplicationStatus `json:"applicationStatus" binding:"omitempty,oneof=Exploring Shortlisting Applying Submitted" example:"Exploring"`
	Colleges          []CollegeRequest         `json:"colleges,omitempty" binding:"omitempty,dive"`
}

// ToModel converts the request into a new student. New students start
// Exploring unless a status is given.
func (r CreateStudentRequest) ToModel(now time.Time) *models.Student {
	status := r.ApplicationStatus
	if status == "" {
		status = models.StatusExploring
	}
	colleges := collegesToModel(r.Colleges, now)
	if colleges == nil {
		colleges = []models.College{}
	}
	regions := r.PreferredRegions
	if regions == nil {
		regions = []models.Region{}
	}

	return &models.Student{
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		Country:           r.Country,
		Grade:             r.Grade,
		GPA:               r.GPA,
		SATEnglish:        r.SATEnglish,
		SATMath:           r.SATMath,
		ACT:               r.ACT,
		FieldOfStudy:      r.FieldOfStudy,
		TuitionBudget:     r.TuitionBudget,
		PreferredRegions:  regions,
		ClassStrength:     r.ClassStrength,
		ApplicationStatus: status,
		CreatedAt:         now,
		LastActive:        now,
		Colleges:          colleges,
	}
}

// UpdateStudentRequest carries a partial student update; omitted fields are kept
type UpdateStudentRequest struct {
	Name              *string                   `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Email             *string                   `json:"email,omitempty" binding:"omitempty,email"`
	Phone             *string                   `json:"phone,omitempty"`
	Country           *string                   `json:"country,omitempty"`
	Grade             *models.SchoolYear        `json:"grade,omitempty" binding:"omitempty,oneof=Freshman Sophomore Junior Senior"`
	GPA               *float64                  `json:"gpa,omitempty" binding:"omitempty,gte=0,lte=4.5"`
	SATEnglish        *int                      `json:"satEnglish,omitempty" binding:"omitempty,gte=400,lte=800"`
	SATMath           *int                      `json:"satMath,omitempty" binding:"omitempty,gte=400,lte=800"`
	ACT               *int                      `json:"act,omitempty" binding:"omitempty,gte=1,lte=36"`
	FieldOfStudy      *string                   `json:"fieldOfStudy,omitempty"`
	TuitionBudget     *int                      `json:"tuitionBudget,omitempty" binding:"omitempty,gte=0"`
	PreferredRegions  []models.Region           `json:"preferredRegions,omitempty" binding:"omitempty,dive,oneof=Northeast Midwest South West"`
	ClassStrength     *string                   `json:"classStrength,omitempty"`
	ApplicationStatus *models.ApplicationStatus `json:"applicationStatus,omitempty" binding:"omitempty,oneof=Exploring Shortlisting Applying Submitted"`
	Colleges          []CollegeRequest          `json:"colleges,omitempty" binding:"omitempty,dive"`
}

// ToPatch converts the request into a student patch
func (r UpdateStudentRequest) ToPatch(now time.Time) models.StudentPatch {
	return models.StudentPatch{
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		Country:           r.Country,
		Grade:             r.Grade,
		GPA:               r.GPA,
		SATEnglish:        r.SATEnglish,
		SATMath:           r.SATMath,
		ACT:               r.ACT,
		FieldOfStudy:      r.FieldOfStudy,
		TuitionBudget:     r.TuitionBudget,
		PreferredRegions:  r.PreferredRegions,
		ClassStrength:     r.ClassStrength,
		ApplicationStatus: r.ApplicationStatus,
		Colleges:          collegesToModel(r.Colleges, now),
	}
}
