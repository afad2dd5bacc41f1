package presence

import (
	"context"
	"net/http"
	"time"

	"github.com/Urbancode-IT/INOUT-sub000/internal/attendance"
	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidMonth = apperror.New(
	apperror.CodeInvalidInput,
	"month must be between 1 and 12",
	http.StatusBadRequest,
)

// EventSource feeds the aggregator raw ledger rows. Satisfied by the
// attendance repository.
type EventSource interface {
	FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error)
}

// ScheduleSource resolves an employee's weekly work schedule.
type ScheduleSource interface {
	WeekFor(ctx context.Context, employeeID string) (WeekSchedule, error)
}

// HolidaySource lists the configured holidays of one month, keyed by
// "2006-01-02".
type HolidaySource interface {
	InMonth(ctx context.Context, year int, month time.Month) (map[string]string, error)
}

// LeaveSource lists days covered by an approved leave request, keyed by
// "2006-01-02".
type LeaveSource interface {
	ApprovedDays(ctx context.Context, employeeID string, from, to time.Time) (map[string]bool, error)
}

// EmployeeSource resolves the join date so earlier days are excluded
// from the month's totals.
type EmployeeSource interface {
	JoinDate(ctx context.Context, employeeID string) (time.Time, error)
}

//go:generate mockgen -source=presence_service.go -destination=mock/presence_service_mock.go -package=mock
type Service interface {
	MonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (SummaryResponse, error)
	Calendar(ctx context.Context, employeeID string, year int, month time.Month) (CalendarResponse, error)
}

type service struct {
	events    EventSource
	schedules ScheduleSource
	holidays  HolidaySource
	leaves    LeaveSource
	employees EmployeeSource
	cache     *Cache
	cfg       Config
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	events EventSource,
	schedules ScheduleSource,
	holidays HolidaySource,
	leaves LeaveSource,
	employees EmployeeSource,
	cache *Cache,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("presence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("presence.service")
	}
	return &service{
		events:    events,
		schedules: schedules,
		holidays:  holidays,
		leaves:    leaves,
		employees: employees,
		cache:     cache,
		cfg:       cfg,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) MonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (SummaryResponse, error) {
	if err := validateMonthQuery(employeeID, month); err != nil {
		return SummaryResponse{}, err
	}

	compute := func() (MonthlySummary, error) {
		_, sum, err := s.buildMonth(ctx, employeeID, year, month)
		return sum, err
	}

	var sum MonthlySummary
	var err error
	if s.cache != nil {
		sum, err = s.cache.GetOrCompute(ctx, employeeID, year, month, compute)
	} else {
		sum, err = compute()
	}
	if err != nil {
		return SummaryResponse{}, err
	}

	return mapSummary(employeeID, year, month, sum), nil
}

func (s *service) Calendar(ctx context.Context, employeeID string, year int, month time.Month) (CalendarResponse, error) {
	if err := validateMonthQuery(employeeID, month); err != nil {
		return CalendarResponse{}, err
	}

	days, sum, err := s.buildMonth(ctx, employeeID, year, month)
	if err != nil {
		return CalendarResponse{}, err
	}

	resp := CalendarResponse{
		EmployeeID: employeeID,
		Year:       year,
		Month:      int(month),
		Days:       make([]DayResponse, len(days)),
		Summary:    mapSummary(employeeID, year, month, sum),
	}
	for i, d := range days {
		resp.Days[i] = mapDay(d)
	}
	return resp, nil
}

// buildMonth gathers ledger, schedule, holiday, leave, and join-date
// inputs, then runs the pure aggregation. Read-only, so safe to run in
// parallel across employees and months.
func (s *service) buildMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]DayClassification, MonthlySummary, error) {
	loc := s.cfg.location()
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)

	events, err := s.events.FindByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, MonthlySummary{}, err
	}

	sched, err := s.schedules.WeekFor(ctx, employeeID)
	if err != nil {
		return nil, MonthlySummary{}, err
	}

	holidays, err := s.holidays.InMonth(ctx, year, month)
	if err != nil {
		return nil, MonthlySummary{}, err
	}

	leaveDays := map[string]bool{}
	if s.leaves != nil {
		if leaveDays, err = s.leaves.ApprovedDays(ctx, employeeID, from, to); err != nil {
			return nil, MonthlySummary{}, err
		}
	}

	var joinDate time.Time
	if s.employees != nil {
		if joinDate, err = s.employees.JoinDate(ctx, employeeID); err != nil {
			return nil, MonthlySummary{}, err
		}
	}

	days, sum := BuildMonth(year, month, joinDate, sched, holidays, leaveDays, events, s.cfg, s.now())
	return days, sum, nil
}

func validateMonthQuery(employeeID string, month time.Month) error {
	if _, err := uuid.Parse(employeeID); err != nil {
		return apperror.New(apperror.CodeInvalidInput, "invalid employee id", http.StatusBadRequest)
	}
	if month < time.January || month > time.December {
		return ErrInvalidMonth
	}
	return nil
}

func mapSummary(employeeID string, year int, month time.Month, sum MonthlySummary) SummaryResponse {
	return SummaryResponse{
		EmployeeID:  employeeID,
		Year:        year,
		Month:       int(month),
		TotalDays:   sum.TotalDays,
		WorkingDays: sum.WorkingDays,
		PresentDays: sum.PresentDays,
		AbsentDays:  sum.AbsentDays,
		LeaveDays:   sum.LeaveDays,
		LateDays:    sum.LateDays,
		HalfDays:    sum.HalfDays,
	}
}

func mapDay(d DayClassification) DayResponse {
	resp := DayResponse{
		Date:           d.Date.Format(dateLayout),
		Status:         d.Status,
		WorkedDuration: d.WorkedDuration,
		LateMinutes:    d.LateMinutes,
	}
	if d.CheckIn != nil {
		resp.CheckIn = d.CheckIn.OccurredAt.Format(time.RFC3339)
		resp.Office = d.CheckIn.MatchedOffice
	}
	if d.CheckOut != nil {
		resp.CheckOut = d.CheckOut.OccurredAt.Format(time.RFC3339)
	}
	return resp
}
