package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/app/query"
	"github.com/yigit/admissions-crm/internal/app/repositories"
	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
	"github.com/yigit/admissions-crm/internal/pkg/latency"
	"github.com/yigit/admissions-crm/internal/pkg/websocket"
)

// CommunicationService defines the operations behind the communications log
type CommunicationService interface {
	ListCommunications(ctx context.Context, q query.CommunicationQuery) (query.Result[query.CommunicationView], error)
	GetCommunication(ctx context.Context, id string) (*query.CommunicationView, error)
	CreateCommunication(ctx context.Context, comm *models.Communication) (*query.CommunicationView, error)
	UpdateCommunication(ctx context.Context, id string, patch models.CommunicationPatch) (*query.CommunicationView, error)
	DeleteCommunication(ctx context.Context, id string) error
	GetStats(ctx context.Context) (query.CommunicationStats, error)
	ListStaffMembers(ctx context.Context) ([]string, error)
}

// communicationServiceImpl implements the CommunicationService interface
type communicationServiceImpl struct {
	communications repositories.CommunicationRepository
	students       repositories.StudentRepository
	latency        *latency.Simulator
	feed           EventPublisher
	now            Clock
	logger         zerolog.Logger
}

// NewCommunicationService creates a new communication service instance
func NewCommunicationService(
	repos *repositories.Repositories,
	sim *latency.Simulator,
	feed EventPublisher,
	now Clock,
	logger zerolog.Logger,
) CommunicationService {
	return &communicationServiceImpl{
		communications: repos.Communications,
		students:       repos.Students,
		latency:        sim,
		feed:           publisherOrNoop(feed),
		now:            clockOrNow(now),
		logger:         logger,
	}
}

func (s *communicationServiceImpl) studentIndex(ctx context.Context) (query.StudentIndex, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, storeError("list students", err)
	}
	return query.NewStudentIndex(students), nil
}

// view joins a single communication with its student's name
func (s *communicationServiceImpl) view(ctx context.Context, comm *models.Communication) *query.CommunicationView {
	v := &query.CommunicationView{Communication: *comm}
	if student, err := s.students.GetByID(ctx, comm.StudentID); err == nil {
		v.StudentName = student.Name
	}
	return v
}

// ListCommunications filters, sorts and pages the communications log
func (s *communicationServiceImpl) ListCommunications(ctx context.Context, q query.CommunicationQuery) (query.Result[query.CommunicationView], error) {
	comms, err := s.communications.List(ctx)
	if err != nil {
		return query.Result[query.CommunicationView]{}, storeError("list communications", err)
	}
	index, err := s.studentIndex(ctx)
	if err != nil {
		return query.Result[query.CommunicationView]{}, err
	}
	return query.QueryCommunications(comms, index, q), nil
}

// GetCommunication retrieves a communication by ID
func (s *communicationServiceImpl) GetCommunication(ctx context.Context, id string) (*query.CommunicationView, error) {
	comm, err := s.communications.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get communication", err)
	}
	return s.view(ctx, comm), nil
}

// CreateCommunication logs a communication against an existing student
func (s *communicationServiceImpl) CreateCommunication(ctx context.Context, comm *models.Communication) (*query.CommunicationView, error) {
	created, err := latency.Run(ctx, s.latency, func() (*models.Communication, error) {
		if comm.StaffMember == "" {
			comm.StaffMember = actorName(ctx)
		}
		if err := validateCommunication(comm); err != nil {
			return nil, err
		}
		if _, err := s.students.GetByID(ctx, comm.StudentID); err != nil {
			if apperrors.Is(err, apperrors.ErrResourceNotFound) {
				return nil, apperrors.NewValidationError("studentId", "student does not exist")
			}
			return nil, storeError("get student", err)
		}
		if comm.Timestamp.IsZero() {
			comm.Timestamp = s.now()
		}
		if err := s.communications.Create(ctx, comm); err != nil {
			return nil, storeError("create communication", err)
		}
		return comm, nil
	})
	if observe("communication", "create", err) != nil {
		return nil, err
	}

	v := s.view(ctx, created)
	s.logger.Info().
		Str("communicationID", created.ID).
		Str("studentID", created.StudentID).
		Str("type", string(created.Type)).
		Msg("Communication logged")
	s.feed.Publish(withActor(ctx, websocket.NewEvent(websocket.EventCommunicationCreated, created.StudentID, created.ID, v)))
	return v, nil
}

// UpdateCommunication merges the set fields of patch into the communication
func (s *communicationServiceImpl) UpdateCommunication(ctx context.Context, id string, patch models.CommunicationPatch) (*query.CommunicationView, error) {
	updated, err := latency.Run(ctx, s.latency, func() (*models.Communication, error) {
		comm, err := s.communications.Update(ctx, id, func(c *models.Communication) error {
			patch.Apply(c)
			return validateCommunication(c)
		})
		return comm, storeError("update communication", err)
	})
	if observe("communication", "update", err) != nil {
		return nil, err
	}

	v := s.view(ctx, updated)
	s.logger.Info().Str("communicationID", id).Msg("Communication updated")
	s.feed.Publish(withActor(ctx, websocket.NewEvent(websocket.EventCommunicationUpdated, updated.StudentID, id, v)))
	return v, nil
}

// DeleteCommunication removes a communication from the log
func (s *communicationServiceImpl) DeleteCommunication(ctx context.Context, id string) error {
	deleted, err := latency.Run(ctx, s.latency, func() (*models.Communication, error) {
		comm, err := s.communications.GetByID(ctx, id)
		if err != nil {
			return nil, storeError("get communication", err)
		}
		return comm, storeError("delete communication", s.communications.Delete(ctx, id))
	})
	if observe("communication", "delete", err) != nil {
		return err
	}

	s.logger.Info().Str("communicationID", id).Msg("Communication deleted")
	s.feed.Publish(withActor(ctx, websocket.NewEvent(websocket.EventCommunicationDeleted, deleted.StudentID, id, nil)))
	return nil
}

// GetStats summarises the whole communications log
func (s *communicationServiceImpl) GetStats(ctx context.Context) (query.CommunicationStats, error) {
	comms, err := s.communications.List(ctx)
	if err != nil {
		return query.CommunicationStats{}, storeError("communication stats", err)
	}
	return query.AggregateCommunicationStats(comms), nil
}

// ListStaffMembers lists the distinct staff members for the log filter
func (s *communicationServiceImpl) ListStaffMembers(ctx context.Context) ([]string, error) {
	comms, err := s.communications.List(ctx)
	if err != nil {
		return nil, storeError("list staff members", err)
	}
	return query.StaffMembers(comms), nil
}
