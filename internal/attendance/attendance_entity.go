package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCheckIn  = "CHECK_IN"
	TypeCheckOut = "CHECK_OUT"
)

// Presence state machine values persisted per employee.
const (
	StateNone      = "NONE"
	StateCheckedIn = "CHECKED_IN"
)

// Event is one immutable ledger entry. Rows are only ever inserted;
// there is no update or delete path.
type Event struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_attendance_events_employee_time;uniqueIndex:uq_attendance_events_employee_type_time"`
	Type          string    `gorm:"column:type;type:varchar(20);not null;uniqueIndex:uq_attendance_events_employee_type_time"`
	OccurredAt    time.Time `gorm:"column:occurred_at;type:timestamptz;not null;index:idx_attendance_events_employee_time;uniqueIndex:uq_attendance_events_employee_type_time"`
	Latitude      float64   `gorm:"column:latitude;not null"`
	Longitude     float64   `gorm:"column:longitude;not null"`
	MatchedOffice string    `gorm:"column:matched_office;type:varchar(100);not null"`
	InOffice      bool      `gorm:"column:in_office;not null"`
	PhotoRef      string    `gorm:"column:photo_ref;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (Event) TableName() string {
	return "attendance_events"
}

// PresenceState holds the authoritative check-in/check-out status for one
// employee. It is read under a row lock and flipped in the same
// transaction that appends the event.
type PresenceState struct {
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;default:NONE"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (PresenceState) TableName() string {
	return "presence_states"
}
