package holiday

import (
	"context"
	"testing"
	"time"

	holidayerrors "github.com/Urbancode-IT/INOUT-sub000/internal/holiday/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	holidays []Holiday
}

func (f *fakeRepo) Create(ctx context.Context, h *Holiday) error {
	for _, existing := range f.holidays {
		if existing.Date.Equal(h.Date) {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_holidays_date"}
		}
	}
	f.holidays = append(f.holidays, *h)
	return nil
}

func (f *fakeRepo) FindByYear(ctx context.Context, year int) ([]Holiday, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return f.between(from, from.AddDate(1, 0, 0)), nil
}

func (f *fakeRepo) FindInRange(ctx context.Context, from, to time.Time) ([]Holiday, error) {
	return f.between(from, to), nil
}

func (f *fakeRepo) between(from, to time.Time) []Holiday {
	var out []Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(from) && h.Date.Before(to) {
			out = append(out, h)
		}
	}
	return out
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	for i, h := range f.holidays {
		if h.ID.String() == id {
			f.holidays = append(f.holidays[:i], f.holidays[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestCreate_ThenInMonth(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateHolidayRequest{Date: "2025-06-05", Name: "Founders Day"})
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateHolidayRequest{Date: "2025-07-01", Name: "Mid-Year Break"})
	assert.NoError(t, err)

	june, err := svc.InMonth(context.Background(), 2025, time.June)
	assert.NoError(t, err)
	assert.Len(t, june, 1)
	assert.Equal(t, "Founders Day", june["2025-06-05"])
}

func TestCreate_DuplicateDate(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), CreateHolidayRequest{Date: "2025-06-05", Name: "Founders Day"})
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateHolidayRequest{Date: "2025-06-05", Name: "Other"})
	assert.ErrorIs(t, err, holidayerrors.ErrHolidayAlreadyExists)
}

func TestCreate_InvalidDate(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), CreateHolidayRequest{Date: "05-06-2025", Name: "Founders Day"})
	assert.ErrorIs(t, err, holidayerrors.ErrInvalidDate)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateHolidayRequest{Date: "2025-06-05", Name: "Founders Day"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), holidayerrors.ErrHolidayNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), holidayerrors.ErrInvalidHolidayID)
}

func TestListByYear(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), CreateHolidayRequest{Date: "2025-06-05", Name: "Founders Day"})
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateHolidayRequest{Date: "2026-01-01", Name: "New Year"})
	assert.NoError(t, err)

	resp, err := svc.ListByYear(context.Background(), 2025)
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "2025-06-05", resp[0].Date)
}
