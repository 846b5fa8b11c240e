package dto

import "github.com/yigit/admissions-crm/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"password"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UpdateProfileRequest carries profile changes; omitted fields are kept
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=2,max=100" example:"Sarah Johnson"`
	Email *string `json:"email,omitempty" binding:"omitempty,email" example:"admin@example.com"`
}

// ToPatch converts the request into a profile patch
func (r UpdateProfileRequest) ToPatch() models.ProfilePatch {
	return models.ProfilePatch{Name: r.Name, Email: r.Email}
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn" example:"3600"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty" example:"604800"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse    `json:"token"`
	User  models.StaffUser `json:"user"`
}

// SessionResponse reports whether the caller's session is valid
type SessionResponse struct {
	Valid bool             `json:"valid" example:"true"`
	User  models.StaffUser `json:"user"`
}
