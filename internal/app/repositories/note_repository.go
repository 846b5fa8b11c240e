package repositories

import (
	"context"
	"slices"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
)

// MemoryNoteRepository serves staff notes out of a MemoryStore
type MemoryNoteRepository struct {
	store *MemoryStore
}

// NewNoteRepository creates a new MemoryNoteRepository
func NewNoteRepository(store *MemoryStore) *MemoryNoteRepository {
	return &MemoryNoteRepository{store: store}
}

func noteID(n models.Note) string    { return n.ID }
func noteOwner(n models.Note) string { return n.StudentID }

// ListByStudent returns the notes written about studentID
func (r *MemoryNoteRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return filterBy(r.store.notes, studentID, noteOwner, identity[models.Note]), nil
}

// GetByID retrieves a note by ID
func (r *MemoryNoteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := indexOf(r.store.notes, id, noteID)
	if i < 0 {
		return nil, apperrors.ErrNoteNotFound
	}
	n := r.store.notes[i]
	return &n, nil
}

// Create appends a note, assigning an ID and timestamp when missing
func (r *MemoryNoteRepository) Create(ctx context.Context, note *models.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	note.ID = r.store.assignID(note.ID)
	if note.Timestamp.IsZero() {
		note.Timestamp = r.store.now()
	}
	r.store.notes = append(r.store.notes, *note)
	return nil
}

// Update applies mutate to a copy of the note and commits it on success
func (r *MemoryNoteRepository) Update(ctx context.Context, id string, mutate func(*models.Note) error) (*models.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.notes, id, noteID)
	if i < 0 {
		return nil, apperrors.ErrNoteNotFound
	}

	updated := r.store.notes[i]
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	updated.ID = id
	r.store.notes[i] = updated
	return &updated, nil
}

// Delete removes a note
func (r *MemoryNoteRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.notes, id, noteID)
	if i < 0 {
		return apperrors.ErrNoteNotFound
	}
	r.store.notes = slices.Delete(r.store.notes, i, i+1)
	return nil
}
