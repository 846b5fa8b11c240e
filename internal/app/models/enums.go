package models

// ApplicationStatus is the admissions funnel stage of a student
type ApplicationStatus string

const (
	StatusExploring    ApplicationStatus = "Exploring"
	StatusShortlisting ApplicationStatus = "Shortlisting"
	StatusApplying     ApplicationStatus = "Applying"
	StatusSubmitted    ApplicationStatus = "Submitted"
)

// AllApplicationStatuses lists the funnel in order
func AllApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{StatusExploring, StatusShortlisting, StatusApplying, StatusSubmitted}
}

// Rank returns the position of the status in the funnel, or -1 if unknown
func (s ApplicationStatus) Rank() int {
	for i, v := range AllApplicationStatuses() {
		if v == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known status
func (s ApplicationStatus) Valid() bool { return s.Rank() >= 0 }

// SchoolYear is the high school grade of a student
type SchoolYear string

const (
	Freshman  SchoolYear = "Freshman"
	Sophomore SchoolYear = "Sophomore"
	Junior    SchoolYear = "Junior"
	Senior    SchoolYear = "Senior"
)

// AllSchoolYears lists the grades in order
func AllSchoolYears() []SchoolYear {
	return []SchoolYear{Freshman, Sophomore, Junior, Senior}
}

// Valid reports whether y is a known grade
func (y SchoolYear) Valid() bool {
	for _, v := range AllSchoolYears() {
		if v == y {
			return true
		}
	}
	return false
}

// Region is a US region a student may prefer
type Region string

const (
	RegionNortheast Region = "Northeast"
	RegionMidwest   Region = "Midwest"
	RegionSouth     Region = "South"
	RegionWest      Region = "West"
)

// AllRegions lists the regions
func AllRegions() []Region {
	return []Region{RegionNortheast, RegionMidwest, RegionSouth, RegionWest}
}

// Valid reports whether r is a known region
func (r Region) Valid() bool {
	for _, v := range AllRegions() {
		if v == r {
			return true
		}
	}
	return false
}

// CollegeStatus is the stage of one college on a student's list
type CollegeStatus string

const (
	CollegeExploring   CollegeStatus = "Exploring"
	CollegeShortlisted CollegeStatus = "Shortlisted"
	CollegeApplying    CollegeStatus = "Applying"
	CollegeApplied     CollegeStatus = "Applied"
	CollegeSubmitted   CollegeStatus = "Submitted"
)

// AllCollegeStatuses lists the college statuses
func AllCollegeStatuses() []CollegeStatus {
	return []CollegeStatus{CollegeExploring, CollegeShortlisted, CollegeApplying, CollegeApplied, CollegeSubmitted}
}

// Valid reports whether s is a known college status
func (s CollegeStatus) Valid() bool {
	for _, v := range AllCollegeStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

// CommunicationType is the channel of a communication
type CommunicationType string

const (
	CommEmail   CommunicationType = "email"
	CommSMS     CommunicationType = "sms"
	CommCall    CommunicationType = "call"
	CommMeeting CommunicationType = "meeting"
)

// AllCommunicationTypes lists the channels
func AllCommunicationTypes() []CommunicationType {
	return []CommunicationType{CommEmail, CommSMS, CommCall, CommMeeting}
}

// Valid reports whether t is a known channel
func (t CommunicationType) Valid() bool {
	for _, v := range AllCommunicationTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// Direction tells whether a communication came from or went to the student
type Direction string

const (
	Inbound  Direction = "inbound"
	Outbound Direction = "outbound"
)

// AllDirections lists the directions
func AllDirections() []Direction {
	return []Direction{Inbound, Outbound}
}

// Valid reports whether d is a known direction
func (d Direction) Valid() bool {
	return d == Inbound || d == Outbound
}

// ActivityType is the kind of action a student performed in the student app
type ActivityType string

const (
	ActivityLogin          ActivityType = "login"
	ActivitySearch         ActivityType = "search"
	ActivityCollegeView    ActivityType = "college_view"
	ActivityCollegeAdd     ActivityType = "college_add"
	ActivityDocumentUpload ActivityType = "document_upload"
	ActivityAIQuestion     ActivityType = "ai_question"
)

// AllActivityTypes lists the activity kinds
func AllActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityLogin, ActivitySearch, ActivityCollegeView,
		ActivityCollegeAdd, ActivityDocumentUpload, ActivityAIQuestion,
	}
}

// Valid reports whether t is a known activity kind
func (t ActivityType) Valid() bool {
	for _, v := range AllActivityTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// RoleType defines the role of a staff user
type RoleType string

const (
	RoleAdmin     RoleType = "admin"
	RoleCounselor RoleType = "counselor"
	RoleStudent   RoleType = "student"
)
