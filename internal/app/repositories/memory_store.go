package repositories

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/admissions-crm/internal/app/models"
)

// Dataset is a full snapshot of the CRM collections
type Dataset struct {
	Students       []models.Student
	Communications []models.Communication
	Notes          []models.Note
	Activities     []models.Activity
}

// MemoryStore keeps every collection in process memory behind one lock.
// Collections are slices so insertion order is preserved; every read and
// write goes through a copy so callers never share memory with the store.
type MemoryStore struct {
	mu             sync.RWMutex
	students       []models.Student
	communications []models.Communication
	notes          []models.Note
	activities     []models.Activity

	now   func() time.Time
	newID func() string
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load replaces the contents of the store with data
func (m *MemoryStore) Load(data Dataset) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.students = make([]models.Student, len(data.Students))
	for i, s := range data.Students {
		m.students[i] = s.Clone()
	}
	m.communications = slices.Clone(data.Communications)
	m.notes = slices.Clone(data.Notes)
	m.activities = make([]models.Activity, len(data.Activities))
	for i, a := range data.Activities {
		m.activities[i] = a.Clone()
	}
}

// Snapshot returns a copy of every collection
func (m *MemoryStore) Snapshot() Dataset {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data := Dataset{
		Students:       make([]models.Student, len(m.students)),
		Communications: slices.Clone(m.communications),
		Notes:          slices.Clone(m.notes),
		Activities:     make([]models.Activity, len(m.activities)),
	}
	for i, s := range m.students {
		data.Students[i] = s.Clone()
	}
	for i, a := range m.activities {
		data.Activities[i] = a.Clone()
	}
	return data
}

func (m *MemoryStore) assignID(id string) string {
	if id != "" {
		return id
	}
	return m.newID()
}

// indexOf returns the position of the item with id, or -1
func indexOf[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

// filterBy returns copies of the items owned by studentID, in store order
func filterBy[T any](items []T, studentID string, owner func(T) string, clone func(T) T) []T {
	out := []T{}
	for _, item := range items {
		if owner(item) == studentID {
			out = append(out, clone(item))
		}
	}
	return out
}

func identity[T any](v T) T { return v }
