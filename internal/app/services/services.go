package services

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
	"github.com/yigit/admissions-crm/internal/pkg/auth"
	"github.com/yigit/admissions-crm/internal/pkg/metrics"
	"github.com/yigit/admissions-crm/internal/pkg/websocket"
)

// Services defined in this package:
// - StudentService: student directory, stats and per-student timeline
// - CommunicationService: communications log and its stats
// - NoteService: internal staff notes about a student
// - ActivityService: student app activity log
// - AuthService: staff sign in and the persisted session

// EventPublisher receives live feed events for committed mutations
type EventPublisher interface {
	Publish(event websocket.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(websocket.Event) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

// Clock returns the current time. Queries and stats are evaluated against it.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// storeError passes through the errors callers are expected to handle and
// wraps anything else as an operation failure
func storeError(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return apperrors.NewOperationFailedError(operation, err)
	}
}

// observe records a mutation outcome and returns err unchanged
func observe(entity, operation string, err error) error {
	metrics.ObserveMutation(entity, operation, err)
	return err
}

// actorName is the display name of the staff member making the request
func actorName(ctx context.Context) string {
	if user, ok := auth.UserFromContext(ctx); ok {
		return user.Name
	}
	return ""
}

// withActor stamps a feed event with the requesting staff member
func withActor(ctx context.Context, event websocket.Event) websocket.Event {
	event.Actor = actorName(ctx)
	return event
}
