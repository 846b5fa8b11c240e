package dto

import "github.com/yigit/admissions-crm/internal/app/models"

// CreateCommunicationRequest represents the data for logging a communication
type CreateCommunicationRequest struct {
	StudentID   string                   `json:"studentId" binding:"required" example:"3f1c2a9e-8d1b-4c57-9a51-0f6f1f7e2b10"`
	Type        models.CommunicationType `json:"type" binding:"required,oneof=email sms call meeting" example:"email"`
	Direction   models.Direction         `json:"direction" binding:"required,oneof=inbound outbound" example:"outbound"`
	Content     string                   `json:"content" binding:"required" example:"Application deadline reminder"`
	StaffMember string                   `json:"staffMember,omitempty" example:"Mike Chen"`
}

// ToModel converts the request into a communication
func (r CreateCommunicationRequest) ToModel() *models.Communication {
	return &models.Communication{
		StudentID:   r.StudentID,
		Type:        r.Type,
		Direction:   r.Direction,
		Content:     r.Content,
		StaffMember: r.StaffMember,
	}
}

// UpdateCommunicationRequest carries a partial communication update
type UpdateCommunicationRequest struct {
	Type        *models.CommunicationType `json:"type,omitempty" binding:"omitempty,oneof=email sms call meeting"`
	Direction   *models.Direction         `json:"direction,omitempty" binding:"omitempty,oneof=inbound outbound"`
	Content     *string                   `json:"content,omitempty" binding:"omitempty,min=1"`
	StaffMember *string                   `json:"staffMember,omitempty" binding:"omitempty,min=1"`
}

// ToPatch converts the request into a communication patch
func (r UpdateCommunicationRequest) ToPatch() models.CommunicationPatch {
	return models.CommunicationPatch{
		Type:        r.Type,
		Direction:   r.Direction,
		Content:     r.Content,
		StaffMember: r.StaffMember,
	}
}
