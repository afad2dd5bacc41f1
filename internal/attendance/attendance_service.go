package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	attendanceerrors "github.com/Urbancode-IT/INOUT-sub000/internal/attendance/errors"
	"github.com/Urbancode-IT/INOUT-sub000/internal/events"
	"github.com/Urbancode-IT/INOUT-sub000/internal/geofence"
	"github.com/Urbancode-IT/INOUT-sub000/internal/messaging/kafka"
	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// SummaryInvalidator drops any cached presence summary covering the day
// an event was appended to. Implemented by the presence cache.
type SummaryInvalidator interface {
	InvalidateSummary(ctx context.Context, employeeID string, day time.Time) error
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string, req SubmitRequest) (SubmitResponse, error)
	CheckOut(ctx context.Context, employeeID string, req SubmitRequest) (SubmitResponse, error)
	History(ctx context.Context, employeeID string, filter HistoryFilterRequest) ([]EventResponse, error)
	Status(ctx context.Context, employeeID string) (StatusResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	sites       []geofence.Site
	outbox      kafka.OutboxRepository
	invalidator SummaryInvalidator
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	sites []geofence.Site,
	outbox kafka.OutboxRepository,
	invalidator SummaryInvalidator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		sites:       sites,
		outbox:      outbox,
		invalidator: invalidator,
		now:         time.Now,
		logger:      l,
	}
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req SubmitRequest) (SubmitResponse, error) {
	return s.submit(ctx, employeeID, TypeCheckIn, req)
}

func (s *service) CheckOut(ctx context.Context, employeeID string, req SubmitRequest) (SubmitResponse, error) {
	return s.submit(ctx, employeeID, TypeCheckOut, req)
}

// submit runs one check-in/check-out as a single transaction: lock the
// employee's state row, enforce the transition, append the event, flip
// the state, queue the outbox record. Either everything commits or
// nothing is recorded.
func (s *service) submit(ctx context.Context, employeeID, eventType string, req SubmitRequest) (SubmitResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return SubmitResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	lat, lon, err := geofence.ParsePoint(req.Location)
	if err != nil {
		s.logger.Warn("submit rejected, bad location",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.String("location", req.Location),
		)
		return SubmitResponse{}, err
	}

	match, err := geofence.Match(lat, lon, s.sites)
	if err != nil {
		return SubmitResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubmitResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()

	state, err := qtx.GetStateForUpdate(ctx, employeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return SubmitResponse{}, err
	}

	current := StateNone
	if state != nil {
		current = state.Status
	}

	switch eventType {
	case TypeCheckIn:
		if current == StateCheckedIn {
			return SubmitResponse{}, attendanceerrors.ErrDuplicateCheckIn
		}
	case TypeCheckOut:
		if current != StateCheckedIn {
			return SubmitResponse{}, attendanceerrors.ErrNoOpenCheckIn
		}
	}

	event := &Event{
		ID:            uuid.New(),
		EmployeeID:    employeeUUID,
		Type:          eventType,
		OccurredAt:    now,
		Latitude:      lat,
		Longitude:     lon,
		MatchedOffice: match.OfficeName,
		InOffice:      match.IsInside,
		PhotoRef:      req.PhotoRef,
	}

	if err := qtx.Append(ctx, event); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return SubmitResponse{}, attendanceerrors.ErrDuplicateCheckIn
		}
		s.logger.Error("append event failed", zap.String("request_id", rid), zap.Error(err))
		return SubmitResponse{}, attendanceerrors.ErrPersistence
	}

	next := StateCheckedIn
	if eventType == TypeCheckOut {
		next = StateNone
	}
	if err := qtx.SaveState(ctx, &PresenceState{
		EmployeeID: employeeUUID,
		Status:     next,
		UpdatedAt:  now,
	}); err != nil {
		return SubmitResponse{}, err
	}

	if s.outbox != nil {
		if err := s.queueRecordedEvent(ctx, tx, rid, event); err != nil {
			return SubmitResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return SubmitResponse{}, err
	}

	if s.invalidator != nil {
		if err := s.invalidator.InvalidateSummary(ctx, employeeID, now); err != nil {
			s.logger.Error("presence cache invalidation failed",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("attendance recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("type", eventType),
		zap.String("office", match.OfficeName),
		zap.Bool("in_office", match.IsInside),
	)

	return SubmitResponse{
		Accepted:   true,
		InOffice:   match.IsInside,
		OfficeName: match.OfficeName,
		Event:      mapToResponse(*event),
	}, nil
}

func (s *service) queueRecordedEvent(ctx context.Context, tx *sql.Tx, rid string, e *Event) error {
	payload, err := json.Marshal(events.AttendanceRecordedEvent{
		EventType:     "attendance.recorded",
		EmployeeID:    e.EmployeeID.String(),
		Type:          e.Type,
		MatchedOffice: e.MatchedOffice,
		InOffice:      e.InOffice,
		OccurredAt:    e.OccurredAt,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     rid,
		AggregateType: "attendance_ledger",
		AggregateID:   e.EmployeeID.String(),
		EventType:     "attendance.recorded",
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) History(ctx context.Context, employeeID string, filter HistoryFilterRequest) ([]EventResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now().UTC()
	from := now.AddDate(0, -1, 0)
	to := now.Add(24 * time.Hour)

	var err error
	if filter.From != "" {
		if from, err = time.Parse("2006-01-02", filter.From); err != nil {
			return nil, attendanceerrors.ErrInvalidDateRange
		}
	}
	if filter.To != "" {
		var end time.Time
		if end, err = time.Parse("2006-01-02", filter.To); err != nil {
			return nil, attendanceerrors.ErrInvalidDateRange
		}
		to = end.AddDate(0, 0, 1)
	}
	if to.Before(from) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]EventResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) Status(ctx context.Context, employeeID string) (StatusResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return StatusResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	last, err := s.repo.LastByEmployee(ctx, employeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return StatusResponse{}, err
	}

	status := StateNone
	if last != nil && last.Type == TypeCheckIn {
		status = StateCheckedIn
	}

	next := TypeCheckIn
	if status == StateCheckedIn {
		next = TypeCheckOut
	}

	return StatusResponse{
		EmployeeID: employeeID,
		Status:     status,
		NextAction: next,
	}, nil
}

func mapToResponse(e Event) EventResponse {
	return EventResponse{
		ID:            e.ID.String(),
		EmployeeID:    e.EmployeeID.String(),
		Type:          e.Type,
		OccurredAt:    e.OccurredAt.Format(time.RFC3339),
		Latitude:      e.Latitude,
		Longitude:     e.Longitude,
		MatchedOffice: e.MatchedOffice,
		InOffice:      e.InOffice,
		PhotoRef:      e.PhotoRef,
	}
}
