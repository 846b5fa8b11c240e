package models

import "time"

// Activity is something a student did in the student-facing app
type Activity struct {
	ID          string                 `json:"id"`
	StudentID   string                 `json:"studentId"`
	Type        ActivityType           `json:"type" example:"college_view"`
	Description string                 `json:"description" example:"Viewed Stanford University details"`
	Timestamp   time.Time              `json:"timestamp"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// Clone returns a copy of the activity with its own metadata map
func (a Activity) Clone() Activity {
	c := a
	if a.Metadata != nil {
		c.Metadata = make(map[string]interface{}, len(a.Metadata))
		for k, v := range a.Metadata {
			c.Metadata[k] = v
		}
	}
	return c
}
