package models

import "time"

// Note is an internal staff note about a student
type Note struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	Content   string    `json:"content" example:"Strong academic performance but needs essay help"`
	Author    string    `json:"author" example:"Sarah Johnson"`
	Timestamp time.Time `json:"timestamp"`
	IsPrivate bool      `json:"isPrivate"`
}

// NotePatch carries a partial update; nil fields are left untouched
type NotePatch struct {
	Content   *string `json:"content,omitempty"`
	IsPrivate *bool   `json:"isPrivate,omitempty"`
}

// Apply merges the set fields of p into n
func (p NotePatch) Apply(n *Note) {
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.IsPrivate != nil {
		n.IsPrivate = *p.IsPrivate
	}
}
