package services

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/app/query"
	"github.com/yigit/admissions-crm/internal/app/repositories"
	"github.com/yigit/admissions-crm/internal/pkg/latency"
	"github.com/yigit/admissions-crm/internal/pkg/websocket"
)

// StudentService defines the operations behind the student directory
type StudentService interface {
	ListStudents(ctx context.Context, q query.StudentQuery) (query.Result[models.Student], error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	GetStats(ctx context.Context) (query.StudentStats, error)
	ListCountries(ctx context.Context) ([]string, error)
	GetTimeline(ctx context.Context, id string) (*Timeline, error)
}

// Timeline is everything recorded about one student, newest first
type Timeline struct {
	Student        models.Student         `json:"student"`
	Communications []models.Communication `json:"communications"`
	Notes          []models.Note          `json:"notes"`
	Activities     []models.Activity      `json:"activities"`
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students       repositories.StudentRepository
	communications repositories.CommunicationRepository
	notes          repositories.NoteRepository
	activities     repositories.ActivityRepository
	latency        *latency.Simulator
	feed           EventPublisher
	now            Clock
	logger         zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	repos *repositories.Repositories,
	sim *latency.Simulator,
	feed EventPublisher,
	now Clock,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		students:       repos.Students,
		communications: repos.Communications,
		notes:          repos.Notes,
		activities:     repos.Activities,
		latency:        sim,
		feed:           publisherOrNoop(feed),
		now:            clockOrNow(now),
		logger:         logger,
	}
}

// ListStudents filters, sorts and pages the student directory
func (s *studentServiceImpl) ListStudents(ctx context.Context, q query.StudentQuery) (query.Result[models.Student], error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return query.Result[models.Student]{}, storeError("list students", err)
	}
	return query.QueryStudents(students, q, s.now()), nil
}

// GetStudent retrieves a student by ID
func (s *studentServiceImpl) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get student", err)
	}
	return student, nil
}

// CreateStudent validates and stores a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	created, err := latency.Run(ctx, s.latency, func() (*models.Student, error) {
		if student.Colleges == nil {
			student.Colleges = []models.College{}
		}
		if student.CreatedAt.IsZero() {
			student.CreatedAt = s.now()
		}
		if student.LastActive.IsZero() {
			student.LastActive = student.CreatedAt
		}
		if err := validateStudent(student); err != nil {
			return nil, err
		}
		if err := s.students.Create(ctx, student); err != nil {
			return nil, storeError("create student", err)
		}
		return student, nil
	})
	if observe("student", "create", err) != nil {
		s.logger.Warn().Err(err).Msg("Student create rejected")
		return nil, err
	}

	s.logger.Info().Str("studentID", created.ID).Str("actor", actorName(ctx)).Msg("Student created")
	s.feed.Publish(withActor(ctx, websocket.NewEvent(websocket.EventStudentCreated, created.ID, created.ID, created)))
	return created, nil
}

// UpdateStudent merges the set fields of patch into the student. The merged
// record is validated before it is stored, so a rejected patch changes nothing.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) (*models.Student, error) {
	updated, err := latency.Run(ctx, s.latency, func() (*models.Student, error) {
		student, err := s.students.Update(ctx, id, func(st *models.Student) error {
			patch.Apply(st)
			return validateStudent(st)
		})
		return student, storeError("update student", err)
	})
	if observe("student", "update", err) != nil {
		return nil, err
	}

	s.logger.Info().Str("studentID", id).Str("actor", actorName(ctx)).Msg("Student updated")
	s.feed.Publish(withActor(ctx, websocket.NewEvent(websocket.EventStudentUpdated, id, id, updated)))
	return updated, nil
}

// DeleteStudent removes a student. Its communications, notes and activity
// stay in the store.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	err := latency.Exec(ctx, s.latency, func() error {
		return storeError("delete student", s.students.Delete(ctx, id))
	})
	if observe("student", "delete", err) != nil {
		return err
	}

	s.logger.Info().Str("studentID", id).Str("actor", actorName(ctx)).Msg("Student deleted")
	s.feed.Publish(withActor(ctx, websocket.NewEvent(websocket.EventStudentDeleted, id, id, nil)))
	return nil
}

// GetStats summarises the whole student collection
func (s *studentServiceImpl) GetStats(ctx context.Context) (query.StudentStats, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return query.StudentStats{}, storeError("student stats", err)
	}
	return query.AggregateStudentStats(students, s.now()), nil
}

// ListCountries lists the distinct countries for the directory filter
func (s *studentServiceImpl) ListCountries(ctx context.Context) ([]string, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, storeError("list countries", err)
	}
	return query.Countries(students), nil
}

// GetTimeline gathers a student's communications, notes and activity
func (s *studentServiceImpl) GetTimeline(ctx context.Context, id string) (*Timeline, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get student", err)
	}

	comms, err := s.communications.ListByStudent(ctx, id)
	if err != nil {
		return nil, storeError("list communications", err)
	}
	notes, err := s.notes.ListByStudent(ctx, id)
	if err != nil {
		return nil, storeError("list notes", err)
	}
	activities, err := s.activities.ListByStudent(ctx, id)
	if err != nil {
		return nil, storeError("list activities", err)
	}

	slices.SortStableFunc(comms, func(a, b models.Communication) int { return b.Timestamp.Compare(a.Timestamp) })
	slices.SortStableFunc(notes, func(a, b models.Note) int { return b.Timestamp.Compare(a.Timestamp) })
	slices.SortStableFunc(activities, func(a, b models.Activity) int { return b.Timestamp.Compare(a.Timestamp) })

	return &Timeline{
		Student:        *student,
		Communications: comms,
		Notes:          notes,
		Activities:     activities,
	}, nil
}
