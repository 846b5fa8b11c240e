package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
)

var errStaffNotFound = apperrors.NewResourceNotFoundError("staff user not found")

// MemoryStaffRepository keeps staff accounts in memory, keyed by ID
type MemoryStaffRepository struct {
	mu    sync.RWMutex
	users map[string]*models.StaffUser
}

// NewStaffRepository creates an empty MemoryStaffRepository
func NewStaffRepository() *MemoryStaffRepository {
	return &MemoryStaffRepository{users: make(map[string]*models.StaffUser)}
}

// GetByEmail finds a staff user by email, ignoring case
func (r *MemoryStaffRepository) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" {
		for _, u := range r.users {
			if strings.ToLower(u.Email) == email {
				usr := *u
				return &usr, nil
			}
		}
	}
	return nil, errStaffNotFound
}

// GetByID retrieves a staff user by ID
func (r *MemoryStaffRepository) GetByID(ctx context.Context, id string) (*models.StaffUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[id]; ok {
		usr := *u
		return &usr, nil
	}
	return nil, errStaffNotFound
}

// Create stores a staff user. Emails are unique.
func (r *MemoryStaffRepository) Create(ctx context.Context, user *models.StaffUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperrors.NewValidationError("email", "a staff user with this email already exists")
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	usr := *user
	r.users[user.ID] = &usr
	return nil
}

// Update applies mutate to a copy of the staff user and commits it on success
func (r *MemoryStaffRepository) Update(ctx context.Context, id string, mutate func(*models.StaffUser) error) (*models.StaffUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, errStaffNotFound
	}
	updated := *u
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	for otherID, other := range r.users {
		if otherID != id && strings.EqualFold(other.Email, updated.Email) {
			return nil, apperrors.NewValidationError("email", "a staff user with this email already exists")
		}
	}
	updated.ID = id
	updated.UpdatedAt = time.Now()
	r.users[id] = &updated

	usr := updated
	return &usr, nil
}
