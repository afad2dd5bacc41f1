package events

import "time"

const AttendanceRecordedTopic = "hr.attendance.ledger.v1"

type AttendanceRecordedEvent struct {
	EventType     string    `json:"event_type"`
	EmployeeID    string    `json:"employee_id"`
	Type          string    `json:"type"`
	MatchedOffice string    `json:"matched_office"`
	InOffice      bool      `json:"in_office"`
	OccurredAt    time.Time `json:"occurred_at"`
}
