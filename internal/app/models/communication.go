package models

import "time"

// Communication is a message or conversation between staff and a student.
// StudentID is a weak reference: deleting the student does not remove it.
type Communication struct {
	ID          string            `json:"id"`
	StudentID   string            `json:"studentId"`
	Type        CommunicationType `json:"type" example:"email"`
	Direction   Direction         `json:"direction" example:"outbound"`
	Content     string            `json:"content" example:"Application deadline reminder"`
	StaffMember string            `json:"staffMember" example:"Mike Chen"`
	Timestamp   time.Time         `json:"timestamp"`
}

// CommunicationPatch carries a partial update; nil fields are left untouched
type CommunicationPatch struct {
	Type        *CommunicationType `json:"type,omitempty"`
	Direction   *Direction         `json:"direction,omitempty"`
	Content     *string            `json:"content,omitempty"`
	StaffMember *string            `json:"staffMember,omitempty"`
}

// Apply merges the set fields of p into c
func (p CommunicationPatch) Apply(c *Communication) {
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Direction != nil {
		c.Direction = *p.Direction
	}
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.StaffMember != nil {
		c.StaffMember = *p.StaffMember
	}
}
