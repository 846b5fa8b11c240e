package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/app/repositories"
	"github.com/yigit/admissions-crm/internal/pkg/auth"
	"github.com/yigit/admissions-crm/internal/pkg/websocket"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func daysAgo(d int) time.Time { return fixedNow.Add(-time.Duration(d) * 24 * time.Hour) }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// recorder collects published feed events
type recorder struct {
	mu     sync.Mutex
	events []websocket.Event
}

func (r *recorder) Publish(e websocket.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []websocket.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]websocket.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func validStudent(id, name string) models.Student {
	return models.Student{
		ID:                id,
		Name:              name,
		Email:             "student." + id + "@email.com",
		Phone:             "+1-555-123-4567",
		Country:           "United States",
		Grade:             models.Junior,
		GPA:               3.6,
		SATEnglish:        intPtr(650),
		SATMath:           intPtr(700),
		FieldOfStudy:      "Biology",
		TuitionBudget:     40000,
		PreferredRegions:  []models.Region{models.RegionWest},
		ApplicationStatus: models.StatusExploring,
		CreatedAt:         daysAgo(60),
		LastActive:        daysAgo(3),
		Colleges:          []models.College{},
	}
}

type fixture struct {
	store *repositories.MemoryStore
	repos *repositories.Repositories
	feed  *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repositories.NewMemoryStore()
	store.Load(repositories.Dataset{
		Students: []models.Student{
			validStudent("s1", "John Smith"),
			validStudent("s2", "Ava Chen"),
		},
		Communications: []models.Communication{
			{ID: "m1", StudentID: "s1", Type: models.CommEmail, Direction: models.Outbound, Content: "Welcome", StaffMember: "Mike Chen", Timestamp: daysAgo(5)},
			{ID: "m2", StudentID: "s2", Type: models.CommCall, Direction: models.Inbound, Content: "Asked about deadlines", StaffMember: "Emily Rodriguez", Timestamp: daysAgo(1)},
		},
		Notes: []models.Note{
			{ID: "n1", StudentID: "s1", Content: "Strong essays", Author: "Sarah Johnson", Timestamp: daysAgo(4)},
			{ID: "n2", StudentID: "s1", Content: "Follow up on SAT", Author: "Mike Chen", Timestamp: daysAgo(2)},
		},
		Activities: []models.Activity{
			{ID: "a1", StudentID: "s1", Type: models.ActivityLogin, Description: "Logged in", Timestamp: daysAgo(6)},
			{ID: "a2", StudentID: "s1", Type: models.ActivityCollegeView, Description: "Viewed Duke University", Timestamp: daysAgo(3)},
		},
	})
	return &fixture{
		store: store,
		repos: repositories.NewRepositories(store, repositories.NewMemoryKVStore()),
		feed:  &recorder{},
	}
}

func (f *fixture) students() StudentService {
	return NewStudentService(f.repos, nil, f.feed, clock, zerolog.Nop())
}

func (f *fixture) communications() CommunicationService {
	return NewCommunicationService(f.repos, nil, f.feed, clock, zerolog.Nop())
}

func (f *fixture) notes() NoteService {
	return NewNoteService(f.repos, nil, f.feed, clock, zerolog.Nop())
}

func (f *fixture) activities() ActivityService {
	return NewActivityService(f.repos, nil, f.feed, clock, zerolog.Nop())
}

// signedIn returns a context carrying the given staff member
func signedIn(name string) context.Context {
	return auth.WithUser(context.Background(), &models.StaffUser{ID: "staff-1", Name: name, Role: models.RoleAdmin})
}

func requireStudentCount(t *testing.T, f *fixture, want int) {
	t.Helper()
	require.Len(t, f.store.Snapshot().Students, want)
}
