package repositories

import (
	"context"
	"slices"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
)

// MemoryCommunicationRepository serves communications out of a MemoryStore
type MemoryCommunicationRepository struct {
	store *MemoryStore
}

// NewCommunicationRepository creates a new MemoryCommunicationRepository
func NewCommunicationRepository(store *MemoryStore) *MemoryCommunicationRepository {
	return &MemoryCommunicationRepository{store: store}
}

func communicationID(c models.Communication) string    { return c.ID }
func communicationOwner(c models.Communication) string { return c.StudentID }

// List returns every communication in insertion order
func (r *MemoryCommunicationRepository) List(ctx context.Context) ([]models.Communication, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := slices.Clone(r.store.communications)
	if out == nil {
		out = []models.Communication{}
	}
	return out, nil
}

// ListByStudent returns the communications that reference studentID
func (r *MemoryCommunicationRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Communication, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return filterBy(r.store.communications, studentID, communicationOwner, identity[models.Communication]), nil
}

// GetByID retrieves a communication by ID
func (r *MemoryCommunicationRepository) GetByID(ctx context.Context, id string) (*models.Communication, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := indexOf(r.store.communications, id, communicationID)
	if i < 0 {
		return nil, apperrors.ErrCommunicationNotFound
	}
	c := r.store.communications[i]
	return &c, nil
}

// Create appends a communication, assigning an ID and timestamp when missing
func (r *MemoryCommunicationRepository) Create(ctx context.Context, comm *models.Communication) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	comm.ID = r.store.assignID(comm.ID)
	if comm.Timestamp.IsZero() {
		comm.Timestamp = r.store.now()
	}
	r.store.communications = append(r.store.communications, *comm)
	return nil
}

// Update applies mutate to a copy of the communication and commits it on success
func (r *MemoryCommunicationRepository) Update(ctx context.Context, id string, mutate func(*models.Communication) error) (*models.Communication, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.communications, id, communicationID)
	if i < 0 {
		return nil, apperrors.ErrCommunicationNotFound
	}

	updated := r.store.communications[i]
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	updated.ID = id
	r.store.communications[i] = updated
	return &updated, nil
}

// Delete removes a communication
func (r *MemoryCommunicationRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := indexOf(r.store.communications, id, communicationID)
	if i < 0 {
		return apperrors.ErrCommunicationNotFound
	}
	r.store.communications = slices.Delete(r.store.communications, i, i+1)
	return nil
}
