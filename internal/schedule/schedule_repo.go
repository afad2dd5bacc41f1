package schedule

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/connection"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, entries []Entry) error
	FindByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	FindDefault(ctx context.Context) ([]Entry, error)
	DeleteByEmployee(ctx context.Context, employeeID string) error
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

func (r *repository) Upsert(ctx context.Context, entries []Entry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "is_leave_day", "updated_at"}),
		}).
		Create(&entries).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("weekday ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindDefault(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("employee_id IS NULL").
		Order("weekday ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&Entry{}).Error
}
