package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one weekday of a weekly work schedule. Rows with a nil
// EmployeeID form the company-wide default; employee rows override the
// default day by day.
type Entry struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_schedules_employee_weekday"`
	Weekday    int        `gorm:"not null;uniqueIndex:uq_schedules_employee_weekday"`
	StartTime  string     `gorm:"type:varchar(5)"`
	EndTime    string     `gorm:"type:varchar(5)"`
	IsLeaveDay bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Entry) TableName() string {
	return "schedule_entries"
}
