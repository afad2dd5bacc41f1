package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/connection"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payroll) error
	FindAll(ctx context.Context) ([]Payroll, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	Update(ctx context.Context, p *Payroll) error
	ExistsForPeriod(ctx context.Context, employeeID string, year, month int) (bool, error)
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

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Order("year DESC, month DESC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID string, year, month int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ?", employeeID).
		Where("year = ? AND month = ?", year, month).
		Count(&count).Error
	return count > 0, err
}
