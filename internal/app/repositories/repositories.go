package repositories

import (
	"context"

	"github.com/yigit/admissions-crm/internal/app/models"
)

// StudentRepository defines the data store operations for students.
// Update hands a copy of the stored student to mutate; the copy is only
// committed when mutate returns nil, so a failed update changes nothing.
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id string, mutate func(*models.Student) error) (*models.Student, error)
	Delete(ctx context.Context, id string) error
}

// CommunicationRepository defines the data store operations for communications
type CommunicationRepository interface {
	List(ctx context.Context) ([]models.Communication, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Communication, error)
	GetByID(ctx context.Context, id string) (*models.Communication, error)
	Create(ctx context.Context, comm *models.Communication) error
	Update(ctx context.Context, id string, mutate func(*models.Communication) error) (*models.Communication, error)
	Delete(ctx context.Context, id string) error
}

// NoteRepository defines the data store operations for staff notes
type NoteRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, id string, mutate func(*models.Note) error) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}

// ActivityRepository defines the data store operations for student activity
type ActivityRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.Activity, error)
	Create(ctx context.Context, activity *models.Activity) error
}

// StaffRepository defines lookups for staff accounts
type StaffRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.StaffUser, error)
	GetByID(ctx context.Context, id string) (*models.StaffUser, error)
	Create(ctx context.Context, user *models.StaffUser) error
	Update(ctx context.Context, id string, mutate func(*models.StaffUser) error) (*models.StaffUser, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Students       StudentRepository
	Communications CommunicationRepository
	Notes          NoteRepository
	Activities     ActivityRepository
	Staff          StaffRepository
	Session        KeyValueStore
}

// NewRepositories initializes all repositories over one in-memory store
func NewRepositories(store *MemoryStore, session KeyValueStore) *Repositories {
	return &Repositories{
		Students:       NewStudentRepository(store),
		Communications: NewCommunicationRepository(store),
		Notes:          NewNoteRepository(store),
		Activities:     NewActivityRepository(store),
		Staff:          NewStaffRepository(),
		Session:        session,
	}
}
