package schedule

import (
	"context"
	"time"

	"github.com/Urbancode-IT/INOUT-sub000/internal/presence"
	scheduleerrors "github.com/Urbancode-IT/INOUT-sub000/internal/schedule/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	SetDefaultWeek(ctx context.Context, req UpsertWeekRequest) (WeekResponse, error)
	SetEmployeeWeek(ctx context.Context, employeeID string, req UpsertWeekRequest) (WeekResponse, error)
	GetWeek(ctx context.Context, employeeID string) (WeekResponse, error)
	GetDefaultWeek(ctx context.Context) (WeekResponse, error)
	WeekFor(ctx context.Context, employeeID string) (presence.WeekSchedule, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) SetDefaultWeek(ctx context.Context, req UpsertWeekRequest) (WeekResponse, error) {
	entries, err := entriesFromRequest(nil, req)
	if err != nil {
		return WeekResponse{}, err
	}

	if err := s.repo.Upsert(ctx, entries); err != nil {
		s.logger.Error("set default week persist failed", zap.Error(err))
		return WeekResponse{}, err
	}

	s.logger.Info("default week schedule updated", zap.Int("days", len(entries)))
	return mapWeek("", entries), nil
}

func (s *service) SetEmployeeWeek(ctx context.Context, employeeID string, req UpsertWeekRequest) (WeekResponse, error) {
	eID, err := uuid.Parse(employeeID)
	if err != nil {
		return WeekResponse{}, scheduleerrors.ErrInvalidEmployeeID
	}

	entries, err := entriesFromRequest(&eID, req)
	if err != nil {
		return WeekResponse{}, err
	}

	if err := s.repo.Upsert(ctx, entries); err != nil {
		s.logger.Error("set employee week persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return WeekResponse{}, err
	}

	s.logger.Info("employee week schedule updated",
		zap.String("employee_id", employeeID),
		zap.Int("days", len(entries)),
	)
	return mapWeek(employeeID, entries), nil
}

func (s *service) GetWeek(ctx context.Context, employeeID string) (WeekResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return WeekResponse{}, scheduleerrors.ErrInvalidEmployeeID
	}

	entries, err := s.resolve(ctx, employeeID)
	if err != nil {
		return WeekResponse{}, err
	}
	if len(entries) == 0 {
		return WeekResponse{}, scheduleerrors.ErrScheduleNotFound
	}
	return mapWeek(employeeID, entries), nil
}

func (s *service) GetDefaultWeek(ctx context.Context) (WeekResponse, error) {
	entries, err := s.repo.FindDefault(ctx)
	if err != nil {
		return WeekResponse{}, err
	}
	if len(entries) == 0 {
		return WeekResponse{}, scheduleerrors.ErrScheduleNotFound
	}
	return mapWeek("", entries), nil
}

// WeekFor feeds the presence aggregator. Employee rows override the
// company default weekday by weekday.
func (s *service) WeekFor(ctx context.Context, employeeID string) (presence.WeekSchedule, error) {
	entries, err := s.resolve(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	week := presence.WeekSchedule{}
	for _, e := range entries {
		week[time.Weekday(e.Weekday)] = presence.DaySchedule{
			Start:      e.StartTime,
			End:        e.EndTime,
			IsLeaveDay: e.IsLeaveDay,
		}
	}
	return week, nil
}

func (s *service) resolve(ctx context.Context, employeeID string) ([]Entry, error) {
	defaults, err := s.repo.FindDefault(ctx)
	if err != nil {
		return nil, err
	}
	overrides, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	byWeekday := map[int]Entry{}
	for _, e := range defaults {
		byWeekday[e.Weekday] = e
	}
	for _, e := range overrides {
		byWeekday[e.Weekday] = e
	}

	merged := make([]Entry, 0, len(byWeekday))
	for wd := 0; wd < 7; wd++ {
		if e, ok := byWeekday[wd]; ok {
			merged = append(merged, e)
		}
	}
	return merged, nil
}

func entriesFromRequest(employeeID *uuid.UUID, req UpsertWeekRequest) ([]Entry, error) {
	entries := make([]Entry, 0, len(req.Days))
	for _, d := range req.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return nil, scheduleerrors.ErrInvalidWeekday
		}
		if !d.IsLeaveDay {
			start, err := time.Parse("15:04", d.Start)
			if err != nil {
				return nil, scheduleerrors.ErrInvalidTimeFormat
			}
			end, err := time.Parse("15:04", d.End)
			if err != nil {
				return nil, scheduleerrors.ErrInvalidTimeFormat
			}
			if !start.Before(end) {
				return nil, scheduleerrors.ErrStartAfterEnd
			}
		}

		entries = append(entries, Entry{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			Weekday:    d.Weekday,
			StartTime:  d.Start,
			EndTime:    d.End,
			IsLeaveDay: d.IsLeaveDay,
		})
	}
	return entries, nil
}

func mapWeek(employeeID string, entries []Entry) WeekResponse {
	days := make([]DayResponse, len(entries))
	for i, e := range entries {
		days[i] = DayResponse{
			Weekday:    e.Weekday,
			Start:      e.StartTime,
			End:        e.EndTime,
			IsLeaveDay: e.IsLeaveDay,
		}
	}
	return WeekResponse{EmployeeID: employeeID, Days: days}
}
