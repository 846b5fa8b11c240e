package services

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/app/repositories"
	"github.com/yigit/admissions-crm/internal/pkg/latency"
	"github.com/yigit/admissions-crm/internal/pkg/websocket"
)

// ActivityService defines the operations for the student activity log
type ActivityService interface {
	ListActivities(ctx context.Context, studentID string) ([]models.Activity, error)
	RecordActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error)
}

// activityServiceImpl implements the ActivityService interface
type activityServiceImpl struct {
	activities repositories.ActivityRepository
	students   repositories.StudentRepository
	latency    *latency.Simulator
	feed       EventPublisher
	now        Clock
	logger     zerolog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(
	repos *repositories.Repositories,
	sim *latency.Simulator,
	feed EventPublisher,
	now Clock,
	logger zerolog.Logger,
) ActivityService {
	return &activityServiceImpl{
		activities: repos.Activities,
		students:   repos.Students,
		latency:    sim,
		feed:       publisherOrNoop(feed),
		now:        clockOrNow(now),
		logger:     logger,
	}
}

// ListActivities returns a student's activity, newest first
func (s *activityServiceImpl) ListActivities(ctx context.Context, studentID string) ([]models.Activity, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, storeError("get student", err)
	}
	activities, err := s.activities.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, storeError("list activities", err)
	}
	slices.SortStableFunc(activities, func(a, b models.Activity) int { return b.Timestamp.Compare(a.Timestamp) })
	return activities, nil
}

// RecordActivity appends an entry to a student's activity log and bumps the
// student's lastActive when the entry is newer
func (s *activityServiceImpl) RecordActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	recorded, err := latency.Run(ctx, s.latency, func() (*models.Activity, error) {
		if err := validateActivity(activity); err != nil {
			return nil, err
		}
		if activity.Timestamp.IsZero() {
			activity.Timestamp = s.now()
		}
		_, err := s.students.Update(ctx, activity.StudentID, func(st *models.Student) error {
			if activity.Timestamp.After(st.LastActive) {
				st.LastActive = activity.Timestamp
			}
			return nil
		})
		if err != nil {
			return nil, storeError("touch student", err)
		}
		if err := s.activities.Create(ctx, activity); err != nil {
			return nil, storeError("record activity", err)
		}
		return activity, nil
	})
	if observe("activity", "create", err) != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("activityID", recorded.ID).
		Str("studentID", recorded.StudentID).
		Str("type", string(recorded.Type)).
		Msg("Activity recorded")
	s.feed.Publish(withActor(ctx, websocket.NewEvent(websocket.EventActivityRecorded, recorded.StudentID, recorded.ID, recorded)))
	return recorded, nil
}
