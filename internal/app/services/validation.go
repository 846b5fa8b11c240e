package services

import (
	"fmt"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
	"github.com/yigit/admissions-crm/internal/pkg/validation"
)

// validateStudent checks a complete student record
func validateStudent(s *models.Student) error {
	if s == nil {
		return apperrors.NewValidationError("student", "student is required")
	}
	if err := validation.First(
		validation.Name("name", s.Name),
		validation.Email("email", s.Email),
		validation.Phone("phone", s.Phone),
		validation.Required("country", s.Country),
		validation.GPA(s.GPA),
		validation.SATScore("satEnglish", s.SATEnglish),
		validation.SATScore("satMath", s.SATMath),
		validation.ACTScore(s.ACT),
		validation.NonNegative("tuitionBudget", s.TuitionBudget),
	); err != nil {
		return err
	}

	if !s.Grade.Valid() {
		return apperrors.NewValidationError("grade", fmt.Sprintf("unknown grade %q", s.Grade))
	}
	if !s.ApplicationStatus.Valid() {
		return apperrors.NewValidationError("applicationStatus", fmt.Sprintf("unknown application status %q", s.ApplicationStatus))
	}
	for _, r := range s.PreferredRegions {
		if !r.Valid() {
			return apperrors.NewValidationError("preferredRegions", fmt.Sprintf("unknown region %q", r))
		}
	}
	for i, c := range s.Colleges {
		if err := validation.Required(fmt.Sprintf("colleges[%d].name", i), c.Name); err != nil {
			return err
		}
		if !c.Status.Valid() {
			return apperrors.NewValidationError(fmt.Sprintf("colleges[%d].status", i), fmt.Sprintf("unknown college status %q", c.Status))
		}
	}
	if !s.CreatedAt.IsZero() && !s.LastActive.IsZero() && s.LastActive.Before(s.CreatedAt) {
		return apperrors.NewValidationError("lastActive", "lastActive cannot be before createdAt")
	}
	return nil
}

// validateCommunication checks a complete communication record
func validateCommunication(c *models.Communication) error {
	if c == nil {
		return apperrors.NewValidationError("communication", "communication is required")
	}
	if err := validation.First(
		validation.Required("studentId", c.StudentID),
		validation.Required("content", c.Content),
		validation.Required("staffMember", c.StaffMember),
	); err != nil {
		return err
	}
	if !c.Type.Valid() {
		return apperrors.NewValidationError("type", fmt.Sprintf("unknown communication type %q", c.Type))
	}
	if !c.Direction.Valid() {
		return apperrors.NewValidationError("direction", fmt.Sprintf("unknown direction %q", c.Direction))
	}
	return nil
}

// validateNote checks a complete note record
func validateNote(n *models.Note) error {
	if n == nil {
		return apperrors.NewValidationError("note", "note is required")
	}
	return validation.First(
		validation.Required("studentId", n.StudentID),
		validation.Required("content", n.Content),
		validation.Required("author", n.Author),
	)
}

// validateActivity checks a complete activity record
func validateActivity(a *models.Activity) error {
	if a == nil {
		return apperrors.NewValidationError("activity", "activity is required")
	}
	if err := validation.First(
		validation.Required("studentId", a.StudentID),
		validation.Required("description", a.Description),
	); err != nil {
		return err
	}
	if !a.Type.Valid() {
		return apperrors.NewValidationError("type", fmt.Sprintf("unknown activity type %q", a.Type))
	}
	return nil
}
