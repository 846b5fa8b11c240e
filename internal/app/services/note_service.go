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

// NoteService defines the operations for internal staff notes
type NoteService interface {
	ListNotes(ctx context.Context, studentID string) ([]models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) (*models.Note, error)
	UpdateNote(ctx context.Context, id string, patch models.NotePatch) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// noteServiceImpl implements the NoteService interface
type noteServiceImpl struct {
	notes    repositories.NoteRepository
	students repositories.StudentRepository
	latency  *latency.Simulator
	feed     EventPublisher
	now      Clock
	logger   zerolog.Logger
}

// NewNoteService creates a new note service instance
func NewNoteService(
	repos *repositories.Repositories,
	sim *latency.Simulator,
	feed EventPublisher,
	now Clock,
	logger zerolog.Logger,
) NoteService {
	return &noteServiceImpl{
		notes:    repos.Notes,
		students: repos.Students,
		latency:  sim,
		feed:     publisherOrNoop(feed),
		now:      clockOrNow(now),
		logger:   logger,
	}
}

// ListNotes returns a student's notes, newest first
func (s *noteServiceImpl) ListNotes(ctx context.Context, studentID string) ([]models.Note, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, storeError("get student", err)
	}
	notes, err := s.notes.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, storeError("list notes", err)
	}
	slices.SortStableFunc(notes, func(a, b models.Note) int { return b.Timestamp.Compare(a.Timestamp) })
	return notes, nil
}

// CreateNote adds a note to a student. The author is the signed in staff
// member unless one is given.
func (s *noteServiceImpl) CreateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	created, err := latency.Run(ctx, s.latency, func() (*models.Note, error) {
		if note.Author == "" {
			note.Author = actorName(ctx)
		}
		if err := validateNote(note); err != nil {
			return nil, err
		}
		if _, err := s.students.GetByID(ctx, note.StudentID); err != nil {
			return nil, storeError("get student", err)
		}
		if note.Timestamp.IsZero() {
			note.Timestamp = s.now()
		}
		if err := s.notes.Create(ctx, note); err != nil {
			return nil, storeError("create note", err)
		}
		return note, nil
	})
	if observe("note", "create", err) != nil {
		return nil, err
	}

	s.logger.Info().Str("noteID", created.ID).Str("studentID", created.StudentID).Msg("Note added")
	s.feed.Publish(withActor(ctx, websocket.NewEvent(websocket.EventNoteCreated, created.StudentID, created.ID, created)))
	return created, nil
}

// UpdateNote merges the set fields of patch into the note
func (s *noteServiceImpl) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (*models.Note, error) {
	updated, err := latency.Run(ctx, s.latency, func() (*models.Note, error) {
		note, err := s.notes.Update(ctx, id, func(n *models.Note) error {
			patch.Apply(n)
			return validateNote(n)
		})
		return note, storeError("update note", err)
	})
	if observe("note", "update", err) != nil {
		return nil, err
	}

	s.logger.Info().Str("noteID", id).Msg("Note updated")
	s.feed.Publish(withActor(ctx, websocket.NewEvent(websocket.EventNoteUpdated, updated.StudentID, id, updated)))
	return updated, nil
}

// DeleteNote removes a note
func (s *noteServiceImpl) DeleteNote(ctx context.Context, id string) error {
	deleted, err := latency.Run(ctx, s.latency, func() (*models.Note, error) {
		note, err := s.notes.GetByID(ctx, id)
		if err != nil {
			return nil, storeError("get note", err)
		}
		return note, storeError("delete note", s.notes.Delete(ctx, id))
	})
	if observe("note", "delete", err) != nil {
		return err
	}

	s.logger.Info().Str("noteID", id).Msg("Note deleted")
	s.feed.Publish(withActor(ctx, websocket.NewEvent(websocket.EventNoteDeleted, deleted.StudentID, id, nil)))
	return nil
}
