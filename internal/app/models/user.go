package models

import (
	"time"
)

// StaffUser is an admissions team member who can sign in to the CRM
type StaffUser struct {
	ID          string     `json:"id" example:"1"`
	Email       string     `json:"email" example:"admin@example.com"`
	Password    string     `json:"-"` // bcrypt hash, never serialized
	Name        string     `json:"name" example:"Sarah Johnson"`
	Role        RoleType   `json:"role" example:"admin"`
	Avatar      string     `json:"avatar,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// ProfilePatch carries profile changes for the signed-in user
type ProfilePatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Apply merges the set fields of p into u
func (p ProfilePatch) Apply(u *StaffUser) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
}
