package query

import (
	"cmp"
	"strings"
	"time"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/pkg/helpers"
)

// StudentSortKey names a sortable student field. The zero value means no sort.
type StudentSortKey string

const (
	SortStudentName              StudentSortKey = "name"
	SortStudentEmail             StudentSortKey = "email"
	SortStudentCountry           StudentSortKey = "country"
	SortStudentGrade             StudentSortKey = "grade"
	SortStudentGPA               StudentSortKey = "gpa"
	SortStudentSATEnglish        StudentSortKey = "satEnglish"
	SortStudentSATMath           StudentSortKey = "satMath"
	SortStudentACT               StudentSortKey = "act"
	SortStudentTuitionBudget     StudentSortKey = "tuitionBudget"
	SortStudentApplicationStatus StudentSortKey = "applicationStatus"
	SortStudentCreatedAt         StudentSortKey = "createdAt"
	SortStudentLastActive        StudentSortKey = "lastActive"
)

func optionalInt(get func(models.Student) *int) Sorter[models.Student] {
	return Sorter[models.Student]{
		Compare: func(a, b models.Student) int { return cmp.Compare(*get(a), *get(b)) },
		Missing: func(s models.Student) bool { return get(s) == nil },
	}
}

var studentSorters = map[StudentSortKey]Sorter[models.Student]{
	SortStudentName:       {Compare: func(a, b models.Student) int { return strings.Compare(a.Name, b.Name) }},
	SortStudentEmail:      {Compare: func(a, b models.Student) int { return strings.Compare(a.Email, b.Email) }},
	SortStudentCountry:    {Compare: func(a, b models.Student) int { return strings.Compare(a.Country, b.Country) }},
	SortStudentGrade:      {Compare: func(a, b models.Student) int { return strings.Compare(string(a.Grade), string(b.Grade)) }},
	SortStudentGPA:        {Compare: func(a, b models.Student) int { return cmp.Compare(a.GPA, b.GPA) }},
	SortStudentSATEnglish: optionalInt(func(s models.Student) *int { return s.SATEnglish }),
	SortStudentSATMath:    optionalInt(func(s models.Student) *int { return s.SATMath }),
	SortStudentACT:        optionalInt(func(s models.Student) *int { return s.ACT }),
	SortStudentTuitionBudget: {
		Compare: func(a, b models.Student) int { return cmp.Compare(a.TuitionBudget, b.TuitionBudget) },
	},
	// funnel order rather than alphabetical
	SortStudentApplicationStatus: {
		Compare: func(a, b models.Student) int {
			return cmp.Compare(a.ApplicationStatus.Rank(), b.ApplicationStatus.Rank())
		},
		Missing: func(s models.Student) bool { return !s.ApplicationStatus.Valid() },
	},
	SortStudentCreatedAt: {
		Compare: func(a, b models.Student) int { return a.CreatedAt.Compare(b.CreatedAt) },
		Missing: func(s models.Student) bool { return s.CreatedAt.IsZero() },
	},
	SortStudentLastActive: {
		Compare: func(a, b models.Student) int { return a.LastActive.Compare(b.LastActive) },
		Missing: func(s models.Student) bool { return s.LastActive.IsZero() },
	},
}

// ParseStudentSort maps a request value to a sort key. Unknown fields give the
// zero key, which leaves the collection order untouched.
func ParseStudentSort(s string) StudentSortKey {
	key := StudentSortKey(strings.TrimSpace(s))
	if _, ok := studentSorters[key]; ok {
		return key
	}
	return ""
}

// LastActiveFilter is the recency window applied to Student.LastActive
type LastActiveFilter string

const (
	LastActiveAll   LastActiveFilter = "all"
	LastActiveWeek  LastActiveFilter = "week"
	LastActiveMonth LastActiveFilter = "month"
)

// Days returns the window length, or false when no window applies
func (f LastActiveFilter) Days() (int, bool) {
	switch f {
	case LastActiveWeek:
		return 7, true
	case LastActiveMonth:
		return 30, true
	default:
		return 0, false
	}
}

// StudentQuery is the filter, sort and page request for the student directory.
// Empty or unrecognised values mean "no constraint".
type StudentQuery struct {
	Search     string
	Status     models.ApplicationStatus
	Country    string
	Grade      models.SchoolYear
	LastActive LastActiveFilter
	SortBy     StudentSortKey
	SortOrder  Order
	Page       int
	PageSize   int
}

// QueryStudents runs q over students as of now
func QueryStudents(students []models.Student, q StudentQuery, now time.Time) Result[models.Student] {
	spec := Spec[models.Student]{
		Order:           q.SortOrder,
		Page:            q.Page,
		PageSize:        q.PageSize,
		DefaultPageSize: helpers.DefaultPageSize,
	}

	if q.Status.Valid() {
		status := q.Status
		spec.Filters = append(spec.Filters, func(s models.Student) bool { return s.ApplicationStatus == status })
	}
	if country := q.Country; country != "" && country != anyValue {
		spec.Filters = append(spec.Filters, func(s models.Student) bool { return s.Country == country })
	}
	if q.Grade.Valid() {
		grade := q.Grade
		spec.Filters = append(spec.Filters, func(s models.Student) bool { return s.Grade == grade })
	}

	if term := normalizeTerm(q.Search); term != "" {
		spec.Search = func(s models.Student) bool {
			return containsFold(term, s.Name, s.Email, s.Country)
		}
	}

	if days, ok := q.LastActive.Days(); ok {
		spec.Recency = func(s models.Student) bool { return helpers.WithinDays(now, s.LastActive, days) }
	}

	if sorter, ok := studentSorters[q.SortBy]; ok {
		spec.Sort = &sorter
	}

	return Run(students, spec)
}
