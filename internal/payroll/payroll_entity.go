package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payroll struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payrolls_employee_period"`
	Year       int       `gorm:"not null;uniqueIndex:uq_payrolls_employee_period"`
	Month      int       `gorm:"not null;uniqueIndex:uq_payrolls_employee_period"`

	// Money in the smallest unit to avoid floating point drift.
	BaseSalary int64 `gorm:"type:bigint;not null;default:0"`
	Allowance  int64 `gorm:"type:bigint;not null;default:0"`
	Deduction  int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary  int64 `gorm:"type:bigint;not null;default:0"`

	// Attendance figures the deduction was computed from.
	WorkingDays int `gorm:"not null;default:0"`
	PresentDays int `gorm:"not null;default:0"`
	AbsentDays  int `gorm:"not null;default:0"`
	LateDays    int `gorm:"not null;default:0"`
	HalfDays    int `gorm:"not null;default:0"`

	Status    string    `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`

	PayslipPath        *string
	PayslipGeneratedAt *time.Time `gorm:"index"`
	PaidAt             *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Payroll) TableName() string {
	return "payrolls"
}
