package presence

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Urbancode-IT/INOUT-sub000/internal/attendance"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEventSource struct {
	events []attendance.Event
}

func (f *fakeEventSource) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error) {
	return f.events, nil
}

type fakeScheduleSource struct{}

func (fakeScheduleSource) WeekFor(ctx context.Context, employeeID string) (WeekSchedule, error) {
	return weekdaySchedule(), nil
}

type fakeHolidaySource struct {
	holidays map[string]string
}

func (f *fakeHolidaySource) InMonth(ctx context.Context, year int, month time.Month) (map[string]string, error) {
	return f.holidays, nil
}

type fakeLeaveSource struct {
	days map[string]bool
}

func (f *fakeLeaveSource) ApprovedDays(ctx context.Context, employeeID string, from, to time.Time) (map[string]bool, error) {
	return f.days, nil
}

type fakeEmployeeSource struct {
	joinDate time.Time
}

func (f *fakeEmployeeSource) JoinDate(ctx context.Context, employeeID string) (time.Time, error) {
	return f.joinDate, nil
}

func newTestPresenceService(events []attendance.Event, cache *Cache) Service {
	svc := NewService(
		&fakeEventSource{events: events},
		fakeScheduleSource{},
		&fakeHolidaySource{holidays: map[string]string{}},
		&fakeLeaveSource{days: map[string]bool{}},
		&fakeEmployeeSource{},
		cache,
		testConfig(),
	)
	// Pin "today" past the queried month so no day counts as future.
	svc.(*service).now = func() time.Time {
		return time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestMonthlySummary_EmptyMonth(t *testing.T) {
	employeeID := uuid.New().String()
	svc := newTestPresenceService(nil, nil)

	resp, err := svc.MonthlySummary(context.Background(), employeeID, 2025, time.June)
	assert.NoError(t, err)
	assert.Equal(t, 30, resp.TotalDays)
	assert.Equal(t, 21, resp.WorkingDays)
	assert.Equal(t, 21, resp.AbsentDays)
	assert.Equal(t, 0, resp.PresentDays)
}

func TestMonthlySummary_InvalidInput(t *testing.T) {
	svc := newTestPresenceService(nil, nil)

	_, err := svc.MonthlySummary(context.Background(), "not-a-uuid", 2025, time.June)
	assert.Error(t, err)

	_, err = svc.MonthlySummary(context.Background(), uuid.New().String(), 2025, time.Month(13))
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestMonthlySummary_ServedFromCache(t *testing.T) {
	employeeID := uuid.New().String()
	rdb, mock := redismock.NewClientMock()

	clock := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	cached := cachedSummary{
		Summary:  MonthlySummary{TotalDays: 30, WorkingDays: 21, PresentDays: 20, AbsentDays: 1, LeaveDays: 9},
		CachedAt: clock.Add(-time.Minute),
	}
	payload, _ := json.Marshal(cached)
	mock.ExpectGet(summaryKey(employeeID, 2025, time.June)).SetVal(string(payload))

	cache := NewCache(rdb, 10*time.Minute, func() time.Time { return clock })
	svc := newTestPresenceService(nil, cache)

	resp, err := svc.MonthlySummary(context.Background(), employeeID, 2025, time.June)
	assert.NoError(t, err)
	assert.Equal(t, 20, resp.PresentDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthlySummary_CacheMissComputesAndStores(t *testing.T) {
	employeeID := uuid.New().String()
	rdb, mock := redismock.NewClientMock()

	clock := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	key := summaryKey(employeeID, 2025, time.June)
	mock.ExpectGet(key).RedisNil()
	expected, _ := json.Marshal(cachedSummary{
		Summary:  MonthlySummary{TotalDays: 30, WorkingDays: 21, AbsentDays: 21, LeaveDays: 9},
		CachedAt: clock,
	})
	mock.ExpectSet(key, expected, 10*time.Minute).SetVal("OK")

	cache := NewCache(rdb, 10*time.Minute, func() time.Time { return clock })
	svc := newTestPresenceService(nil, cache)

	resp, err := svc.MonthlySummary(context.Background(), employeeID, 2025, time.June)
	assert.NoError(t, err)
	assert.Equal(t, 21, resp.AbsentDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthlySummary_StaleCacheEntryIsRecomputed(t *testing.T) {
	employeeID := uuid.New().String()
	rdb, mock := redismock.NewClientMock()

	clock := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	key := summaryKey(employeeID, 2025, time.June)

	// Entry written more than one TTL ago must not be served even
	// though redis still returned it.
	stale, _ := json.Marshal(cachedSummary{
		Summary:  MonthlySummary{TotalDays: 30, WorkingDays: 21, PresentDays: 20, AbsentDays: 1, LeaveDays: 9},
		CachedAt: clock.Add(-11 * time.Minute),
	})
	mock.ExpectGet(key).SetVal(string(stale))
	fresh, _ := json.Marshal(cachedSummary{
		Summary:  MonthlySummary{TotalDays: 30, WorkingDays: 21, AbsentDays: 21, LeaveDays: 9},
		CachedAt: clock,
	})
	mock.ExpectSet(key, fresh, 10*time.Minute).SetVal("OK")

	cache := NewCache(rdb, 10*time.Minute, func() time.Time { return clock })
	svc := newTestPresenceService(nil, cache)

	resp, err := svc.MonthlySummary(context.Background(), employeeID, 2025, time.June)
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.PresentDays)
	assert.Equal(t, 21, resp.AbsentDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_InvalidateSummary(t *testing.T) {
	employeeID := uuid.New().String()
	rdb, mock := redismock.NewClientMock()

	day := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectDel(summaryKey(employeeID, 2025, time.June)).SetVal(1)

	cache := NewCache(rdb, 10*time.Minute, nil)
	assert.NoError(t, cache.InvalidateSummary(context.Background(), employeeID, day))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalendar_DaysCoverMonth(t *testing.T) {
	employeeID := uuid.New()
	events := []attendance.Event{
		{
			ID:            uuid.New(),
			EmployeeID:    employeeID,
			Type:          attendance.TypeCheckIn,
			OccurredAt:    time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			MatchedOffice: "Pallikaranai",
			InOffice:      true,
		},
		{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			Type:       attendance.TypeCheckOut,
			OccurredAt: time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		},
	}
	svc := newTestPresenceService(events, nil)

	resp, err := svc.Calendar(context.Background(), employeeID.String(), 2025, time.June)
	assert.NoError(t, err)
	assert.Len(t, resp.Days, 30)
	assert.Equal(t, "2025-06-02", resp.Days[1].Date)
	assert.Equal(t, StatusPresent, resp.Days[1].Status)
	assert.Equal(t, "Pallikaranai", resp.Days[1].Office)
	assert.Equal(t, "9h 0m", resp.Days[1].WorkedDuration)
	assert.Equal(t, resp.Summary.WorkingDays, resp.Summary.PresentDays+resp.Summary.AbsentDays)
}
