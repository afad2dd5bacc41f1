package holiday

import (
	"time"

	"github.com/google/uuid"
)

type Holiday struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date      time.Time `gorm:"type:date;uniqueIndex:uq_holidays_date;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}
