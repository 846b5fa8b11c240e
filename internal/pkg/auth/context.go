package auth

import (
	"context"

	"github.com/yigit/admissions-crm/internal/app/models"
)

type contextKey struct{}

// WithUser returns a copy of ctx carrying the authenticated staff user
func WithUser(ctx context.Context, user *models.StaffUser) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext returns the authenticated staff user, if any
func UserFromContext(ctx context.Context) (*models.StaffUser, bool) {
	user, ok := ctx.Value(contextKey{}).(*models.StaffUser)
	return user, ok && user != nil
}
