package models

import "time"

// Student is a prospective student tracked through the admissions funnel
type Student struct {
	ID                string            `json:"id" example:"3f1c2a9e-8d1b-4c57-9a51-0f6f1f7e2b10"`
	Name              string            `json:"name" example:"Emma Smith"`
	Email             string            `json:"email" example:"emma.smith@email.com"`
	Phone             string            `json:"phone" example:"+1-555-123-4567"`
	Country           string            `json:"country" example:"Canada"`
	Grade             SchoolYear        `json:"grade" example:"Junior"`
	GPA               float64           `json:"gpa" example:"3.85"`
	SATEnglish        *int              `json:"satEnglish,omitempty" example:"720"`
	SATMath           *int              `json:"satMath,omitempty" example:"760"`
	ACT               *int              `json:"act,omitempty" example:"33"`
	FieldOfStudy      string            `json:"fieldOfStudy" example:"Computer Science"`
	TuitionBudget     int               `json:"tuitionBudget" example:"45000"`
	PreferredRegions  []Region          `json:"preferredRegions"`
	ClassStrength     string            `json:"classStrength,omitempty" example:"Medium (5,000-15,000)"`
	ApplicationStatus ApplicationStatus `json:"applicationStatus" example:"Shortlisting"`
	LastActive        time.Time         `json:"lastActive"`
	CreatedAt         time.Time         `json:"createdAt"`
	Colleges          []College         `json:"colleges"`
}

// College is an entry on a student's college list. It only exists inside its Student.
type College struct {
	ID      string        `json:"id"`
	Name    string        `json:"name" example:"Duke University"`
	City    string        `json:"city" example:"Durham"`
	State   string        `json:"state" example:"NC"`
	Status  CollegeStatus `json:"status" example:"Shortlisted"`
	AddedAt time.Time     `json:"addedAt"`
}

// Clone returns a deep copy of the student, including its owned colleges
func (s Student) Clone() Student {
	c := s
	c.SATEnglish = cloneInt(s.SATEnglish)
	c.SATMath = cloneInt(s.SATMath)
	c.ACT = cloneInt(s.ACT)
	if s.PreferredRegions != nil {
		c.PreferredRegions = append([]Region(nil), s.PreferredRegions...)
	}
	if s.Colleges != nil {
		c.Colleges = append([]College(nil), s.Colleges...)
	}
	return c
}

// StudentPatch carries a partial update; nil fields are left untouched
type StudentPatch struct {
	Name              *string            `json:"name,omitempty"`
	Email             *string            `json:"email,omitempty"`
	Phone             *string            `json:"phone,omitempty"`
	Country           *string            `json:"country,omitempty"`
	Grade             *SchoolYear        `json:"grade,omitempty"`
	GPA               *float64           `json:"gpa,omitempty"`
	SATEnglish        *int               `json:"satEnglish,omitempty"`
	SATMath           *int               `json:"satMath,omitempty"`
	ACT               *int               `json:"act,omitempty"`
	FieldOfStudy      *string            `json:"fieldOfStudy,omitempty"`
	TuitionBudget     *int               `json:"tuitionBudget,omitempty"`
	PreferredRegions  []Region           `json:"preferredRegions,omitempty"`
	ClassStrength     *string            `json:"classStrength,omitempty"`
	ApplicationStatus *ApplicationStatus `json:"applicationStatus,omitempty"`
	LastActive        *time.Time         `json:"lastActive,omitempty"`
	Colleges          []College          `json:"colleges,omitempty"`
}

// Apply merges the set fields of p into s
func (p StudentPatch) Apply(s *Student) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Country != nil {
		s.Country = *p.Country
	}
	if p.Grade != nil {
		s.Grade = *p.Grade
	}
	if p.GPA != nil {
		s.GPA = *p.GPA
	}
	if p.SATEnglish != nil {
		s.SATEnglish = cloneInt(p.SATEnglish)
	}
	if p.SATMath != nil {
		s.SATMath = cloneInt(p.SATMath)
	}
	if p.ACT != nil {
		s.ACT = cloneInt(p.ACT)
	}
	if p.FieldOfStudy != nil {
		s.FieldOfStudy = *p.FieldOfStudy
	}
	if p.TuitionBudget != nil {
		s.TuitionBudget = *p.TuitionBudget
	}
	if p.PreferredRegions != nil {
		s.PreferredRegions = append([]Region(nil), p.PreferredRegions...)
	}
	if p.ClassStrength != nil {
		s.ClassStrength = *p.ClassStrength
	}
	if p.ApplicationStatus != nil {
		s.ApplicationStatus = *p.ApplicationStatus
	}
	if p.LastActive != nil {
		s.LastActive = *p.LastActive
	}
	if p.Colleges != nil {
		s.Colleges = append([]College(nil), p.Colleges...)
	}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
