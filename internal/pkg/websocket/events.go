package websocket

import "time"

// EventType names what happened to which entity
type EventType string

const (
	EventCommunicationCreated EventType = "communication.created"
	EventCommunicationUpdated EventType = "communication.updated"
	EventCommunicationDeleted EventType = "communication.deleted"
	EventNoteCreated          EventType = "note.created"
	EventNoteUpdated          EventType = "note.updated"
	EventNoteDeleted          EventType = "note.deleted"
	EventStudentCreated       EventType = "student.created"
	EventStudentUpdated       EventType = "student.updated"
	EventStudentDeleted       EventType = "student.deleted"
	EventActivityRecorded     EventType = "activity.recorded"
)

// Event is one entry of the live activity feed
type Event struct {
	Type      EventType   `json:"type"`
	StudentID string      `json:"studentId,omitempty"`
	EntityID  string      `json:"entityId"`
	Actor     string      `json:"actor,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent stamps an event with the current time
func NewEvent(typ EventType, studentID, entityID string, payload interface{}) Event {
	return Event{
		Type:      typ,
		StudentID: studentID,
		EntityID:  entityID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}
