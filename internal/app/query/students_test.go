package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/admissions-crm/internal/app/models"
)

func studentNames(res Result[models.Student]) []string {
	out := make([]string, len(res.Data))
	for i, s := range res.Data {
		out[i] = s.Name
	}
	return out
}

func TestQueryStudents_LastActiveWindow(t *testing.T) {
	students := []models.Student{
		student("s1", "Two Days", models.StatusExploring, 2),
		student("s2", "Ten Days", models.StatusExploring, 10),
		student("s3", "Forty Days", models.StatusExploring, 40),
	}

	week := QueryStudents(students, StudentQuery{LastActive: LastActiveWeek}, now)
	assert.Equal(t, []string{"Two Days"}, studentNames(week))

	month := QueryStudents(students, StudentQuery{LastActive: LastActiveMonth}, now)
	assert.Equal(t, []string{"Two Days", "Ten Days"}, studentNames(month))

	all := QueryStudents(students, StudentQuery{LastActive: LastActiveAll}, now)
	assert.Equal(t, 3, all.Total)
}

func TestQueryStudents_WindowBoundaryIsInclusive(t *testing.T) {
	s := student("s1", "Boundary", models.StatusApplying, 0)
	s.LastActive = daysAgo(7).Add(-23 * time.Hour) // floors to 7 days
	res := QueryStudents([]models.Student{s}, StudentQuery{LastActive: LastActiveWeek}, now)
	assert.Equal(t, 1, res.Total)

	s.LastActive = daysAgo(8)
	res = QueryStudents([]models.Student{s}, StudentQuery{LastActive: LastActiveWeek}, now)
	assert.Equal(t, 0, res.Total)
}

func TestQueryStudents_SearchWithStatusFilter(t *testing.T) {
	students := []models.Student{
		student("s1", "John Smith", models.StatusApplying, 1),
		student("s2", "Anna Smithson", models.StatusExploring, 1),
		student("s3", "Liam Brown", models.StatusApplying, 1),
	}

	res := QueryStudents(students, StudentQuery{Search: "smith", Status: models.StatusApplying}, now)
	assert.Equal(t, []string{"John Smith"}, studentNames(res))

	res = QueryStudents(students, StudentQuery{Search: "SMITH"}, now)
	assert.Equal(t, []string{"John Smith", "Anna Smithson"}, studentNames(res))
}

func TestQueryStudents_SearchFields(t *testing.T) {
	s := student("s1", "Emma Garcia", models.StatusApplying, 1)
	s.Email = "emma.g@school.org"
	s.Country = "Canada"
	s.FieldOfStudy = "Physics"
	students := []models.Student{s}

	for _, term := range []string{"garcia", "school.org", "canad"} {
		assert.Equal(t, 1, QueryStudents(students, StudentQuery{Search: term}, now).Total, term)
	}
	assert.Equal(t, 0, QueryStudents(students, StudentQuery{Search: "physics"}, now).Total)
}

func TestQueryStudents_ExactFilters(t *testing.T) {
	a := student("s1", "A", models.StatusApplying, 1)
	a.Country = "India"
	a.Grade = models.Junior
	b := student("s2", "B", models.StatusApplying, 1)
	b.Country = "india"
	c := student("s3", "C", models.StatusSubmitted, 1)
	c.Country = "India"
	students := []models.Student{a, b, c}

	res := QueryStudents(students, StudentQuery{Country: "India"}, now)
	assert.Equal(t, []string{"A", "C"}, studentNames(res), "country match is case sensitive")

	res = QueryStudents(students, StudentQuery{Country: "India", Grade: models.Junior}, now)
	assert.Equal(t, []string{"A"}, studentNames(res))

	res = QueryStudents(students, StudentQuery{Status: "Bogus", Grade: "Postgrad", Country: "all"}, now)
	assert.Equal(t, 3, res.Total, "unknown filter values are ignored")
}

func TestQueryStudents_AddingFilterNeverGrowsTotal(t *testing.T) {
	var students []models.Student
	statuses := models.AllApplicationStatuses()
	for i := 0; i < 40; i++ {
		s := student(fmt.Sprintf("s%d", i), "Student", statuses[i%len(statuses)], i)
		if i%3 == 0 {
			s.Country = "Canada"
		}
		students = append(students, s)
	}

	base := StudentQuery{Search: "student"}
	narrower := []StudentQuery{
		{Search: "student", Status: models.StatusApplying},
		{Search: "student", Country: "Canada"},
		{Search: "student", LastActive: LastActiveMonth},
		{Search: "student", Status: models.StatusApplying, Country: "Canada"},
	}
	baseTotal := QueryStudents(students, base, now).Total
	assert.LessOrEqual(t, baseTotal, len(students))
	for _, q := range narrower {
		assert.LessOrEqual(t, QueryStudents(students, q, now).Total, baseTotal)
	}
}

func TestQueryStudents_Sorting(t *testing.T) {
	a := student("s1", "Carla", models.StatusSubmitted, 1)
	a.SATMath = intPtr(700)
	b := student("s2", "Aaron", models.StatusExploring, 1)
	c := student("s3", "Bella", models.StatusApplying, 1)
	c.SATMath = intPtr(780)
	students := []models.Student{a, b, c}

	res := QueryStudents(students, StudentQuery{SortBy: SortStudentName}, now)
	assert.Equal(t, []string{"Aaron", "Bella", "Carla"}, studentNames(res))

	res = QueryStudents(students, StudentQuery{SortBy: SortStudentApplicationStatus, SortOrder: Desc}, now)
	assert.Equal(t, []string{"Carla", "Bella", "Aaron"}, studentNames(res))

	res = QueryStudents(students, StudentQuery{SortBy: SortStudentSATMath, SortOrder: Desc}, now)
	assert.Equal(t, []string{"Bella", "Carla", "Aaron"}, studentNames(res), "missing score sorts last")

	res = QueryStudents(students, StudentQuery{SortBy: SortStudentSATMath, SortOrder: Asc}, now)
	assert.Equal(t, []string{"Carla", "Bella", "Aaron"}, studentNames(res), "missing score sorts last")
}

func TestParseStudentSort(t *testing.T) {
	assert.Equal(t, SortStudentGPA, ParseStudentSort("gpa"))
	assert.Equal(t, SortStudentLastActive, ParseStudentSort(" lastActive "))
	assert.Equal(t, StudentSortKey(""), ParseStudentSort("password"))

	students := []models.Student{
		student("s1", "Zed", models.StatusApplying, 1),
		student("s2", "Amy", models.StatusApplying, 1),
	}
	res := QueryStudents(students, StudentQuery{SortBy: ParseStudentSort("password")}, now)
	require.Len(t, res.Data, 2)
	assert.Equal(t, []string{"Zed", "Amy"}, studentNames(res), "unknown sort keeps collection order")
}
