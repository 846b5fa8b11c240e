package query

import (
	"strings"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/pkg/helpers"
)

// CommunicationSortKey names a sortable communication field. The zero value
// selects the default order, newest first.
type CommunicationSortKey string

const (
	SortCommunicationTimestamp   CommunicationSortKey = "timestamp"
	SortCommunicationType        CommunicationSortKey = "type"
	SortCommunicationDirection   CommunicationSortKey = "direction"
	SortCommunicationStaffMember CommunicationSortKey = "staffMember"
)

var communicationSorters = map[CommunicationSortKey]Sorter[CommunicationView]{
	SortCommunicationTimestamp: {
		Compare: func(a, b CommunicationView) int { return a.Timestamp.Compare(b.Timestamp) },
		Missing: func(c CommunicationView) bool { return c.Timestamp.IsZero() },
	},
	SortCommunicationType: {
		Compare: func(a, b CommunicationView) int { return strings.Compare(string(a.Type), string(b.Type)) },
	},
	SortCommunicationDirection: {
		Compare: func(a, b CommunicationView) int { return strings.Compare(string(a.Direction), string(b.Direction)) },
	},
	SortCommunicationStaffMember: {
		Compare: func(a, b CommunicationView) int { return strings.Compare(a.StaffMember, b.StaffMember) },
		Missing: func(c CommunicationView) bool { return c.StaffMember == "" },
	},
}

// ParseCommunicationSort maps a request value to a sort key; unknown fields
// give the zero key.
func ParseCommunicationSort(s string) CommunicationSortKey {
	key := CommunicationSortKey(strings.TrimSpace(s))
	if _, ok := communicationSorters[key]; ok {
		return key
	}
	return ""
}

// CommunicationView is a communication joined with its student's name
type CommunicationView struct {
	models.Communication
	StudentName string `json:"studentName,omitempty"`
}

// StudentIndex resolves the student a communication belongs to
type StudentIndex map[string]models.Student

// NewStudentIndex indexes students by id
func NewStudentIndex(students []models.Student) StudentIndex {
	idx := make(StudentIndex, len(students))
	for _, s := range students {
		idx[s.ID] = s
	}
	return idx
}

// Join attaches the owning student's name to each communication. Dangling
// references keep an empty name.
func (idx StudentIndex) Join(comms []models.Communication) []CommunicationView {
	views := make([]CommunicationView, len(comms))
	for i, c := range comms {
		views[i] = CommunicationView{Communication: c, StudentName: idx[c.StudentID].Name}
	}
	return views
}

// CommunicationQuery is the filter, sort and page request for the
// communications log. Empty or unrecognised values mean "no constraint".
type CommunicationQuery struct {
	Search      string
	StudentID   string
	Type        models.CommunicationType
	Direction   models.Direction
	StaffMember string
	SortBy      CommunicationSortKey
	SortOrder   Order
	Page        int
	PageSize    int
}

// QueryCommunications runs q over comms. Search also matches the linked
// student's name and email, looked up in students.
func QueryCommunications(comms []models.Communication, students StudentIndex, q CommunicationQuery) Result[CommunicationView] {
	spec := Spec[CommunicationView]{
		Order:           q.SortOrder,
		Page:            q.Page,
		PageSize:        q.PageSize,
		DefaultPageSize: helpers.DefaultPageSize,
	}

	if id := q.StudentID; id != "" {
		spec.Filters = append(spec.Filters, func(c CommunicationView) bool { return c.StudentID == id })
	}
	if q.Type.Valid() {
		typ := q.Type
		spec.Filters = append(spec.Filters, func(c CommunicationView) bool { return c.Type == typ })
	}
	if q.Direction.Valid() {
		dir := q.Direction
		spec.Filters = append(spec.Filters, func(c CommunicationView) bool { return c.Direction == dir })
	}
	if staff := q.StaffMember; staff != "" && staff != anyValue {
		spec.Filters = append(spec.Filters, func(c CommunicationView) bool { return c.StaffMember == staff })
	}

	if term := normalizeTerm(q.Search); term != "" {
		spec.Search = func(c CommunicationView) bool {
			if containsFold(term, c.Content, c.StaffMember) {
				return true
			}
			s, ok := students[c.StudentID]
			return ok && containsFold(term, s.Name, s.Email)
		}
	}

	if sorter, ok := communicationSorters[q.SortBy]; ok {
		spec.Sort = &sorter
	} else {
		sorter := communicationSorters[SortCommunicationTimestamp]
		spec.Sort = &sorter
		spec.Order = Desc
	}

	return Run(students.Join(comms), spec)
}
