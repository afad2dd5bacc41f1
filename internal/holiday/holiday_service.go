package holiday

import (
	"context"
	"errors"
	"time"

	holidayerrors "github.com/Urbancode-IT/INOUT-sub000/internal/holiday/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	InMonth(ctx context.Context, year int, month time.Month) (map[string]string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidDate
	}

	h := &Holiday{
		ID:   uuid.New(),
		Date: date,
		Name: req.Name,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return HolidayResponse{}, holidayerrors.ErrHolidayAlreadyExists
		}
		s.logger.Error("create holiday persist failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("holiday created",
		zap.String("date", req.Date),
		zap.String("name", req.Name),
	)
	return mapHoliday(*h), nil
}

func (s *service) ListByYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = mapHoliday(h)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return holidayerrors.ErrInvalidHolidayID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return holidayerrors.ErrHolidayNotFound
		}
		return err
	}

	s.logger.Info("holiday deleted", zap.String("holiday_id", id))
	return nil
}

// InMonth feeds the presence aggregator with the month's holidays,
// keyed by YYYY-MM-DD.
func (s *service) InMonth(ctx context.Context, year int, month time.Month) (map[string]string, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	holidays, err := s.repo.FindInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]string, len(holidays))
	for _, h := range holidays {
		byDate[h.Date.Format("2006-01-02")] = h.Name
	}
	return byDate, nil
}

func mapHoliday(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID.String(),
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}
