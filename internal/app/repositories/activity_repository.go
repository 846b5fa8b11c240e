package repositories

import (
	"context"

	"github.com/yigit/admissions-crm/internal/app/models"
)

// MemoryActivityRepository serves the student activity log out of a MemoryStore
type MemoryActivityRepository struct {
	store *MemoryStore
}

// NewActivityRepository creates a new MemoryActivityRepository
func NewActivityRepository(store *MemoryStore) *MemoryActivityRepository {
	return &MemoryActivityRepository{store: store}
}

func activityOwner(a models.Activity) string { return a.StudentID }

// ListByStudent returns the activity recorded for studentID
func (r *MemoryActivityRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return filterBy(r.store.activities, studentID, activityOwner, models.Activity.Clone), nil
}

// Create appends an activity entry
func (r *MemoryActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	activity.ID = r.store.assignID(activity.ID)
	if activity.Timestamp.IsZero() {
		activity.Timestamp = r.store.now()
	}
	r.store.activities = append(r.store.activities, activity.Clone())
	return nil
}
