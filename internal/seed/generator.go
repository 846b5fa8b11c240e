package seed

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	appModels "github.com/yigit/admissions-crm/internal/app/models"
	appRepos "github.com/yigit/admissions-crm/internal/app/repositories"
)

// DefaultStudentCount is the size of the generated student directory
const DefaultStudentCount = 75

// Options controls mock data generation. A zero Seed picks one from the clock.
type Options struct {
	Seed         int64
	StudentCount int
	Now          time.Time
}

var (
	firstNames = []string{
		"Emma", "Liam", "Olivia", "Noah", "Ava", "William", "Sophia", "Mason", "Isabella", "James",
		"Charlotte", "Benjamin", "Amelia", "Lucas", "Mia", "Henry", "Harper", "Alexander", "Evelyn", "Sebastian",
		"Abigail", "Jackson", "Emily", "Aiden", "Elizabeth", "Matthew", "Mila", "Samuel", "Ella", "David",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
		"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
	}

	countries = []string{
		"United States", "Canada", "United Kingdom", "Australia", "India", "Singapore", "Germany",
		"France", "South Korea", "Japan", "Brazil", "Mexico", "Netherlands", "Sweden", "Switzerland",
	}

	fieldsOfStudy = []string{
		"Computer Science", "Business Administration", "Engineering", "Psychology", "Biology",
		"Economics", "Political Science", "English Literature", "Mathematics", "Physics",
		"Chemistry", "Pre-Medicine", "Art History", "International Relations", "Environmental Science",
	}

	classStrengths = []string{
		"Small (Under 5,000)", "Medium (5,000-15,000)", "Large (15,000-30,000)", "Very Large (30,000+)",
	}

	colleges = []struct{ name, city, state string }{
		{"Harvard University", "Cambridge", "MA"},
		{"Stanford University", "Stanford", "CA"},
		{"MIT", "Cambridge", "MA"},
		{"Yale University", "New Haven", "CT"},
		{"Princeton University", "Princeton", "NJ"},
		{"Columbia University", "New York", "NY"},
		{"University of Chicago", "Chicago", "IL"},
		{"University of Pennsylvania", "Philadelphia", "PA"},
		{"Northwestern University", "Evanston", "IL"},
		{"Duke University", "Durham", "NC"},
	}

	staffMembers = []string{"Sarah Johnson", "Mike Chen", "Emily Davis", "James Wilson", "Anna Rodriguez"}

	communicationTemplates = map[appModels.CommunicationType][]string{
		appModels.CommEmail: {
			"Welcome email sent with getting started guide",
			"Follow-up on college selection process",
			"Essay review feedback provided",
			"Application deadline reminder",
			"Scholarship opportunity notification",
		},
		appModels.CommSMS: {
			"Quick check-in on application progress",
			"Reminder about upcoming deadline",
			"Congratulations on college acceptance",
		},
		appModels.CommCall: {
			"Initial consultation call completed",
			"College selection discussion",
			"Essay brainstorming session",
			"Application strategy meeting",
		},
		appModels.CommMeeting: {
			"In-person college counseling session",
			"Parent-student strategy meeting",
			"Mock interview practice",
		},
	}

	noteTemplates = []string{
		"Student is very motivated and organized",
		"Parents are heavily involved in the process",
		"Strong academic performance but needs essay help",
		"Interested in STEM programs specifically",
		"Budget constraints may limit options",
		"Excellent extracurricular activities",
		"Needs help with standardized test prep",
		"Very responsive to communication",
		"Has clear career goals in mind",
		"Considering gap year options",
	}

	activityDescriptions = map[appModels.ActivityType][]string{
		appModels.ActivityLogin:          {"User logged in via Google OAuth", "User logged in via email"},
		appModels.ActivitySearch:         {"Searched for colleges in California", "Filtered colleges by tuition budget", "Searched for engineering programs"},
		appModels.ActivityCollegeView:    {"Viewed Harvard University profile", "Viewed Stanford University details", "Checked admission requirements"},
		appModels.ActivityCollegeAdd:     {"Added MIT to My Colleges", "Added Yale to shortlist", "Saved Columbia University"},
		appModels.ActivityDocumentUpload: {"Uploaded transcript", "Submitted essay draft", "Added recommendation letter"},
		appModels.ActivityAIQuestion:     {"Asked about college admissions", "Inquired about essay topics", "Asked for career advice"},
	}
)

// generator draws every random value, ids included, from one source so a
// fixed seed reproduces the same dataset
type generator struct {
	rnd *rand.Rand
	now time.Time
}

// Generate builds a mock dataset: students first, then communications, notes
// and activities for each of them
func Generate(opts Options) appRepos.Dataset {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.StudentCount <= 0 {
		opts.StudentCount = DefaultStudentCount
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	g := &generator{rnd: rand.New(rand.NewSource(opts.Seed)), now: opts.Now}
	students := g.students(opts.StudentCount)
	return appRepos.Dataset{
		Students:       students,
		Communications: g.communications(students),
		Notes:          g.notes(students),
		Activities:     g.activities(students),
	}
}

func (g *generator) id() string {
	id, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func pick[T any](g *generator, items []T) T {
	return items[g.rnd.Intn(len(items))]
}

// sample returns n distinct items in random order
func sample[T any](g *generator, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, 0, n)
	for _, i := range g.rnd.Perm(len(items))[:n] {
		out = append(out, items[i])
	}
	return out
}

// between returns a time uniformly drawn from [start, end]
func (g *generator) between(start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(g.rnd.Int63n(int64(span) + 1)))
}

// score returns a value in [lo, lo+span) or nil with probability skip
func (g *generator) score(skip float64, lo, span int) *int {
	if g.rnd.Float64() < skip {
		return nil
	}
	v := lo + g.rnd.Intn(span)
	return &v
}

func (g *generator) students(count int) []appModels.Student {
	since := time.Date(2023, time.January, 1, 0, 0, 0, 0, g.now.Location())
	if since.After(g.now) {
		since = g.now.AddDate(-1, 0, 0)
	}
	monthAgo := g.now.Add(-30 * 24 * time.Hour)

	statuses := appModels.AllApplicationStatuses()
	years := appModels.AllSchoolYears()
	regions := appModels.AllRegions()
	collegeStatuses := appModels.AllCollegeStatuses()

	students := make([]appModels.Student, 0, count)
	for i := 0; i < count; i++ {
		first, last := pick(g, firstNames), pick(g, lastNames)
		createdAt := g.between(since, g.now)
		activeFrom := monthAgo
		if createdAt.After(activeFrom) {
			activeFrom = createdAt
		}

		picked := sample(g, colleges, 2+g.rnd.Intn(8))
		studentColleges := make([]appModels.College, 0, len(picked))
		for _, c := range picked {
			studentColleges = append(studentColleges, appModels.College{
				ID:      g.id(),
				Name:    c.name,
				City:    c.city,
				State:   c.state,
				Status:  pick(g, collegeStatuses),
				AddedAt: g.between(createdAt, g.now),
			})
		}

		students = append(students, appModels.Student{
			ID:                g.id(),
			Name:              first + " " + last,
			Email:             strings.ToLower(first) + "." + strings.ToLower(last) + "@email.com",
			Phone:             fmt.Sprintf("+1-%d-%d-%d", 100+g.rnd.Intn(900), 100+g.rnd.Intn(900), 1000+g.rnd.Intn(9000)),
			Country:           pick(g, countries),
			Grade:             pick(g, years),
			GPA:               math.Round((2.5+g.rnd.Float64()*2)*100) / 100,
			SATEnglish:        g.score(0.3, 400, 401),
			SATMath:           g.score(0.3, 400, 401),
			ACT:               g.score(0.5, 16, 21),
			FieldOfStudy:      pick(g, fieldsOfStudy),
			TuitionBudget:     20000 + g.rnd.Intn(60000),
			PreferredRegions:  sample(g, regions, 1+g.rnd.Intn(3)),
			ClassStrength:     pick(g, classStrengths),
			ApplicationStatus: pick(g, statuses),
			CreatedAt:         createdAt,
			LastActive:        g.between(activeFrom, g.now),
			Colleges:          studentColleges,
		})
	}
	return students
}

func (g *generator) communications(students []appModels.Student) []appModels.Communication {
	types := appModels.AllCommunicationTypes()
	directions := appModels.AllDirections()

	var out []appModels.Communication
	for _, s := range students {
		n := 1 + g.rnd.Intn(10)
		for i := 0; i < n; i++ {
			typ := pick(g, types)
			out = append(out, appModels.Communication{
				ID:          g.id(),
				StudentID:   s.ID,
				Type:        typ,
				Direction:   pick(g, directions),
				Content:     pick(g, communicationTemplates[typ]),
				StaffMember: pick(g, staffMembers),
				Timestamp:   g.between(s.CreatedAt, g.now),
			})
		}
	}
	return out
}

func (g *generator) notes(students []appModels.Student) []appModels.Note {
	var out []appModels.Note
	for _, s := range students {
		n := g.rnd.Intn(5)
		for i := 0; i < n; i++ {
			out = append(out, appModels.Note{
				ID:        g.id(),
				StudentID: s.ID,
				Content:   pick(g, noteTemplates),
				Author:    pick(g, staffMembers),
				Timestamp: g.between(s.CreatedAt, g.now),
				IsPrivate: g.rnd.Float64() > 0.7,
			})
		}
	}
	return out
}

func (g *generator) activities(students []appModels.Student) []appModels.Activity {
	types := appModels.AllActivityTypes()

	var out []appModels.Activity
	for _, s := range students {
		n := 5 + g.rnd.Intn(25)
		for i := 0; i < n; i++ {
			typ := pick(g, types)
			activity := appModels.Activity{
				ID:          g.id(),
				StudentID:   s.ID,
				Type:        typ,
				Description: pick(g, activityDescriptions[typ]),
				Timestamp:   g.between(s.CreatedAt, g.now),
			}
			if typ == appModels.ActivityCollegeView {
				activity.Metadata = map[string]interface{}{"collegeId": g.id()}
			}
			out = append(out, activity)
		}
	}
	return out
}
