package seed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appModels "github.com/yigit/admissions-crm/internal/app/models"
	appRepos "github.com/yigit/admissions-crm/internal/app/repositories"
	"github.com/yigit/admissions-crm/internal/pkg/auth"
)

var now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(Options{Seed: 42, StudentCount: 20, Now: now})
	b := Generate(Options{Seed: 42, StudentCount: 20, Now: now})
	c := Generate(Options{Seed: 43, StudentCount: 20, Now: now})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Students[0].ID, c.Students[0].ID)
}

func TestGenerate_Shape(t *testing.T) {
	data := Generate(Options{Seed: 7, Now: now})
	require.Len(t, data.Students, DefaultStudentCount)

	byStudent := make(map[string]appModels.Student, len(data.Students))
	ids := make(map[string]struct{})
	for _, s := range data.Students {
		byStudent[s.ID] = s
		ids[s.ID] = struct{}{}

		assert.False(t, s.CreatedAt.After(s.LastActive), "createdAt <= lastActive for %s", s.Name)
		assert.False(t, s.LastActive.After(now))
		assert.WithinDuration(t, now, s.LastActive, 30*24*time.Hour)
		assert.GreaterOrEqual(t, s.GPA, 2.5)
		assert.LessOrEqual(t, s.GPA, 4.5)
		if s.SATMath != nil {
			assert.GreaterOrEqual(t, *s.SATMath, 400)
			assert.LessOrEqual(t, *s.SATMath, 800)
		}
		if s.ACT != nil {
			assert.GreaterOrEqual(t, *s.ACT, 16)
			assert.LessOrEqual(t, *s.ACT, 36)
		}
		assert.True(t, s.Grade.Valid())
		assert.True(t, s.ApplicationStatus.Valid())
		assert.GreaterOrEqual(t, len(s.Colleges), 2)
		assert.LessOrEqual(t, len(s.Colleges), 9)
		assert.NotEmpty(t, s.PreferredRegions)
		assert.Contains(t, s.Email, "@email.com")
	}

	perStudent := func(studentID string, counts map[string]int) { counts[studentID]++ }

	comms := map[string]int{}
	for _, c := range data.Communications {
		s, ok := byStudent[c.StudentID]
		require.True(t, ok)
		assert.False(t, c.Timestamp.Before(s.CreatedAt))
		assert.Contains(t, communicationTemplates[c.Type], c.Content)
		perStudent(c.StudentID, comms)
	}
	notes := map[string]int{}
	for _, n := range data.Notes {
		require.Contains(t, ids, n.StudentID)
		perStudent(n.StudentID, notes)
	}
	activities := map[string]int{}
	for _, a := range data.Activities {
		require.Contains(t, ids, a.StudentID)
		if a.Type == appModels.ActivityCollegeView {
			assert.Contains(t, a.Metadata, "collegeId")
		}
		perStudent(a.StudentID, activities)
	}

	for id := range ids {
		assert.GreaterOrEqual(t, comms[id], 1)
		assert.LessOrEqual(t, comms[id], 10)
		assert.LessOrEqual(t, notes[id], 4)
		assert.GreaterOrEqual(t, activities[id], 5)
		assert.LessOrEqual(t, activities[id], 29)
	}
}

func TestLoadMockData(t *testing.T) {
	store := appRepos.NewMemoryStore()
	data := LoadMockData(store, Options{Seed: 1, StudentCount: 5, Now: now}, zerolog.Nop())

	snap := store.Snapshot()
	assert.Len(t, snap.Students, 5)
	assert.Equal(t, len(data.Communications), len(snap.Communications))
}

func TestCreateDefaultData(t *testing.T) {
	repos := appRepos.NewRepositories(appRepos.NewMemoryStore(), appRepos.NewMemoryKVStore())
	admin := AdminAccount{Name: "Sarah Johnson", Email: "admin@example.com", Password: "password"}
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, repos, admin, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, repos, admin, zerolog.Nop()), "second run is a no-op")

	user, err := repos.Staff.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", user.Name)
	assert.Equal(t, appModels.RoleAdmin, user.Role)
	assert.True(t, auth.CheckPassword(user.Password, "password"))
}
