package repositories

import (
	"context"
	"slices"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
	"github.com/yigit/admissions-crm/internal/pkg/logger"
)

// MemoryStudentRepository serves students out of a MemoryStore
type MemoryStudentRepository struct {
	store *MemoryStore
}

// NewStudentRepository creates a new MemoryStudentRepository
func NewStudentRepository(store *MemoryStore) *MemoryStudentRepository {
	return &MemoryStudentRepository{store: store}
}

func studentID(s models.Student) string { return s.ID }

// List returns every student in insertion order
func (r *MemoryStudentRepository) List(ctx context.Context) ([]models.Student, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]models.Student, len(r.store.students))
	for i, s := range r.store.students {
		out[i] = s.Clone()
	}
	return out, nil
}

// GetByID retrieves a student by ID
func (r *MemoryStudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := indexOf(r.store.students, id, studentID)
	if i < 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	s := r.store.students[i].Clone()
	return &s, nil
}

// Create appends a student, assigning an ID and creation time when missing
func (r *MemoryStudentRepository) Create(ctx context.Context, student *models.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	student.ID = r.store.assignID(student.ID)
	now := r.store.now()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	if student.LastActive.IsZero() {
		student.LastActive = now
	}
	if student.Colleges == nil {
		student.Colleges = []models.College{}
	}
	r.store.students = append(r.store.students, student.Clone())

	logger.Debug().Str("studentID", student.ID).Msg("Student created")
	return nil
}

// Update applies mutate to a copy of the student and commits it on success
func (r *MemoryStudentRepository) Update(ctx context.Context, id string, mutate func(*models.Student) error) (*models.Student, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.students, id, studentID)
	if i < 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	updated := r.store.students[i].Clone()
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	updated.ID = id
	r.store.students[i] = updated.Clone()
	return &updated, nil
}

// Delete removes a student. Communications, notes and activities that
// reference it are left in place.
func (r *MemoryStudentRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.students, id, studentID)
	if i < 0 {
		return apperrors.ErrStudentNotFound
	}
	r.store.students = slices.Delete(r.store.students, i, i+1)
	return nil
}
