package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Urbancode-IT/INOUT-sub000/internal/employee"
	"github.com/Urbancode-IT/INOUT-sub000/internal/events"
	"github.com/Urbancode-IT/INOUT-sub000/internal/messaging/kafka"
	payrollerrors "github.com/Urbancode-IT/INOUT-sub000/internal/payroll/errors"
	"github.com/Urbancode-IT/INOUT-sub000/internal/presence"
	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusProcessed = "PROCESSED"
	StatusPaid      = "PAID"
)

// SummarySource supplies the attendance figures a payslip is computed
// from. Satisfied by the presence service.
type SummarySource interface {
	MonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (presence.SummaryResponse, error)
}

// EmployeeSource resolves employee details for the payslip header.
type EmployeeSource interface {
	GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actorID string, req GeneratePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context) ([]PayrollResponse, error)
	GetMine(ctx context.Context, employeeID string) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	MarkPaid(ctx context.Context, actorID, id string) (PayrollResponse, error)
	RenderPayslip(ctx context.Context, payrollID string) error
	Payslip(ctx context.Context, id string) ([]byte, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	summaries SummarySource
	employees EmployeeSource
	outbox    kafka.OutboxRepository
	store     PayslipStore
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	summaries SummarySource,
	employees EmployeeSource,
	outboxRepo kafka.OutboxRepository,
	store PayslipStore,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		summaries: summaries,
		employees: employees,
		outbox:    outboxRepo,
		store:     store,
		logger:    l,
	}
}

func (s *service) Generate(ctx context.Context, actorID string, req GeneratePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payroll requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}
	if req.BaseSalary < 0 || req.Allowance < 0 {
		return PayrollResponse{}, payrollerrors.ErrInvalidMoneyValue
	}

	summary, err := s.summaries.MonthlySummary(ctx, req.EmployeeID, req.Year, time.Month(req.Month))
	if err != nil {
		s.logger.Error("generate payroll summary fetch failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForPeriod(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return PayrollResponse{}, err
	}
	if exists {
		return PayrollResponse{}, payrollerrors.ErrPayrollAlreadyExists
	}

	deduction := computeDeduction(req.BaseSalary, summary)
	p := &Payroll{
		ID:          uuid.New(),
		EmployeeID:  employeeUUID,
		Year:        req.Year,
		Month:       req.Month,
		BaseSalary:  req.BaseSalary,
		Allowance:   req.Allowance,
		Deduction:   deduction,
		NetSalary:   req.BaseSalary + req.Allowance - deduction,
		WorkingDays: summary.WorkingDays,
		PresentDays: summary.PresentDays,
		AbsentDays:  summary.AbsentDays,
		LateDays:    summary.LateDays,
		HalfDays:    summary.HalfDays,
		Status:      StatusDraft,
		CreatedBy:   actorUUID,
	}

	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("generate payroll persist failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	if s.outbox != nil {
		event := events.PayslipRequestedEvent{
			EventType:   "payslip_requested",
			PayrollID:   p.ID.String(),
			EmployeeID:  p.EmployeeID.String(),
			Year:        p.Year,
			Month:       p.Month,
			RequestedAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PayrollResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll",
			AggregateID:   p.ID.String(),
			EventType:     "payslip_requested",
			Topic:         events.PayslipRequestedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("generate payroll outbox persist failed", zap.Error(err))
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate payroll commit failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("generate payroll success",
		zap.String("request_id", rid),
		zap.String("payroll_id", p.ID.String()),
		zap.Int64("net_salary", p.NetSalary),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollResponse, error) {
	payrolls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(payrolls), nil
}

func (s *service) GetMine(ctx context.Context, employeeID string) ([]PayrollResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}
	payrolls, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) MarkPaid(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := s.findIn(ctx, qtx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if p.Status != StatusProcessed {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	p.Status = StatusPaid
	p.PaidAt = &now

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("mark paid persist failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll marked paid", zap.String("payroll_id", id))
	return mapToResponse(*p), nil
}

// RenderPayslip builds and stores the PDF for a draft payroll. Runs
// asynchronously off the payslip request topic.
func (s *service) RenderPayslip(ctx context.Context, payrollID string) error {
	p, err := s.find(ctx, payrollID)
	if err != nil {
		return err
	}

	employeeName := p.EmployeeID.String()
	if s.employees != nil {
		if empl, err := s.employees.GetByID(ctx, p.EmployeeID.String()); err == nil {
			employeeName = empl.FullName
		}
	}

	pdf, err := buildSimplePayslipPDF(payslipLines(*p, employeeName))
	if err != nil {
		return err
	}

	name := fmt.Sprintf("payslip-%s-%04d-%02d.pdf", p.EmployeeID, p.Year, p.Month)
	path, err := s.store.Save(name, pdf)
	if err != nil {
		s.logger.Error("render payslip store failed", zap.String("payroll_id", payrollID), zap.Error(err))
		return err
	}

	now := time.Now().UTC()
	p.PayslipPath = &path
	p.PayslipGeneratedAt = &now
	if p.Status == StatusDraft {
		p.Status = StatusProcessed
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	s.logger.Info("payslip rendered",
		zap.String("payroll_id", payrollID),
		zap.String("path", path),
	)
	return nil
}

func (s *service) Payslip(ctx context.Context, id string) ([]byte, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.PayslipPath == nil {
		return nil, payrollerrors.ErrPayslipNotGenerated
	}
	return s.store.Read(*p.PayslipPath)
}

func (s *service) find(ctx context.Context, id string) (*Payroll, error) {
	return s.findIn(ctx, s.repo, id)
}

func (s *service) findIn(ctx context.Context, repo Repository, id string) (*Payroll, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidPayrollID
	}
	p, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPayrollNotFound
		}
		return nil, err
	}
	return p, nil
}

// computeDeduction docks a full day's pay per absent day and half a
// day's pay per half day.
func computeDeduction(baseSalary int64, summary presence.SummaryResponse) int64 {
	if summary.WorkingDays == 0 {
		return 0
	}
	perDay := baseSalary / int64(summary.WorkingDays)
	return perDay*int64(summary.AbsentDays) + perDay*int64(summary.HalfDays)/2
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		Year:        p.Year,
		Month:       p.Month,
		BaseSalary:  p.BaseSalary,
		Allowance:   p.Allowance,
		Deduction:   p.Deduction,
		NetSalary:   p.NetSalary,
		WorkingDays: p.WorkingDays,
		PresentDays: p.PresentDays,
		AbsentDays:  p.AbsentDays,
		LateDays:    p.LateDays,
		HalfDays:    p.HalfDays,
		Status:      p.Status,
		PayslipPath: p.PayslipPath,
	}
	if p.PaidAt != nil {
		v := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	res := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		res[i] = mapToResponse(p)
	}
	return res
}
