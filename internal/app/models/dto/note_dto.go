package dto

import "github.com/yigit/admissions-crm/internal/app/models"

// CreateNoteRequest represents the data for adding a note to a student
type CreateNoteRequest struct {
	Content   string `json:"content" binding:"required" example:"Strong essays, follow up about scholarships"`
	IsPrivate bool   `json:"isPrivate" example:"false"`
}

// ToModel converts the request into a note for the given student
func (r CreateNoteRequest) ToModel(studentID string) *models.Note {
	return &models.Note{
		StudentID: studentID,
		Content:   r.Content,
		IsPrivate: r.IsPrivate,
	}
}

// UpdateNoteRequest carries a partial note update
type UpdateNoteRequest struct {
	Content   *string `json:"content,omitempty" binding:"omitempty,min=1"`
	IsPrivate *bool   `json:"isPrivate,omitempty"`
}

// ToPatch converts the request into a note patch
func (r UpdateNoteRequest) ToPatch() models.NotePatch {
	return models.NotePatch{Content: r.Content, IsPrivate: r.IsPrivate}
}

// RecordActivityRequest represents an entry for a student's activity log
type RecordActivityRequest struct {
	Type        models.ActivityType    `json:"type" binding:"required,oneof=login search college_view college_add document_upload ai_question" example:"college_view"`
	Description string                 `json:"description" binding:"required" example:"Viewed Duke University"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ToModel converts the request into an activity for the given student
func (r RecordActivityRequest) ToModel(studentID string) *models.Activity {
	return &models.Activity{
		StudentID:   studentID,
		Type:        r.Type,
		Description: r.Description,
		Metadata:    r.Metadata,
	}
}
