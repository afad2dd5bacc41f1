package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/connection"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Append(ctx context.Context, e *Event) error
	FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error)
	LastByEmployee(ctx context.Context, employeeID string) (*Event, error)
	GetStateForUpdate(ctx context.Context, employeeID string) (*PresenceState, error)
	SaveState(ctx context.Context, s *PresenceState) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Append(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error) {
	var rows []Event
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("occurred_at >= ? AND occurred_at < ?", from, to).
		Order("occurred_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) LastByEmployee(ctx context.Context, employeeID string) (*Event, error) {
	var e Event
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("occurred_at DESC").
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetStateForUpdate loads the employee's state row under FOR UPDATE so a
// concurrent submit for the same employee blocks until this transaction
// finishes. A missing row reads as NONE.
func (r *repository) GetStateForUpdate(ctx context.Context, employeeID string) (*PresenceState, error) {
	var s PresenceState
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) SaveState(ctx context.Context, s *PresenceState) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(s).Error
}
