package presence

import (
	"testing"
	"time"

	"github.com/Urbancode-IT/INOUT-sub000/internal/attendance"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		GraceMinutes:            10,
		HalfDayThresholdMinutes: 60,
		Location:                time.UTC,
	}
}

// Monday-Friday 09:00-18:00, weekend off.
func weekdaySchedule() WeekSchedule {
	ws := WeekSchedule{}
	for d := time.Monday; d <= time.Friday; d++ {
		ws[d] = DaySchedule{Start: "09:00", End: "18:00"}
	}
	ws[time.Saturday] = DaySchedule{IsLeaveDay: true}
	ws[time.Sunday] = DaySchedule{IsLeaveDay: true}
	return ws
}

func eventAt(t time.Time, typ string) attendance.Event {
	return attendance.Event{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Type:       typ,
		OccurredAt: t,
	}
}

// 2025-06-02 is a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestClassifyDay_OnTimeWithinGrace(t *testing.T) {
	checkIn := eventAt(monday.Add(9*time.Hour+5*time.Minute), attendance.TypeCheckIn)

	cls := ClassifyDay(monday, weekdaySchedule(), nil, nil,
		[]attendance.Event{checkIn}, testConfig(), monday.Add(23*time.Hour))

	assert.Equal(t, StatusPresent, cls.Status)
	assert.Equal(t, 0, cls.LateMinutes)
}

func TestClassifyDay_LatePastGrace(t *testing.T) {
	checkIn := eventAt(monday.Add(9*time.Hour+25*time.Minute), attendance.TypeCheckIn)

	cls := ClassifyDay(monday, weekdaySchedule(), nil, nil,
		[]attendance.Event{checkIn}, testConfig(), monday.Add(23*time.Hour))

	assert.Equal(t, StatusLate, cls.Status)
	assert.Equal(t, 15, cls.LateMinutes)
}

func TestClassifyDay_HalfDayPastThreshold(t *testing.T) {
	// 10:15 is 65 minutes past the grace-adjusted 09:10 start.
	checkIn := eventAt(monday.Add(10*time.Hour+15*time.Minute), attendance.TypeCheckIn)

	cls := ClassifyDay(monday, weekdaySchedule(), nil, nil,
		[]attendance.Event{checkIn}, testConfig(), monday.Add(23*time.Hour))

	assert.Equal(t, StatusHalfDay, cls.Status)
	assert.Equal(t, 65, cls.LateMinutes)
}

func TestClassifyDay_AbsentWithoutCheckIn(t *testing.T) {
	cls := ClassifyDay(monday, weekdaySchedule(), nil, nil, nil, testConfig(), monday.Add(23*time.Hour))
	assert.Equal(t, StatusAbsent, cls.Status)
}

func TestClassifyDay_HolidayBeatsAbsence(t *testing.T) {
	holidays := map[string]string{"2025-06-02": "Founders Day"}
	cls := ClassifyDay(monday, weekdaySchedule(), holidays, nil, nil, testConfig(), monday.Add(23*time.Hour))
	assert.Equal(t, StatusLeave, cls.Status)
}

func TestClassifyDay_RestDayIsLeave(t *testing.T) {
	saturday := monday.AddDate(0, 0, 5)
	cls := ClassifyDay(saturday, weekdaySchedule(), nil, nil, nil, testConfig(), saturday.Add(23*time.Hour))
	assert.Equal(t, StatusLeave, cls.Status)
}

func TestClassifyDay_ApprovedLeave(t *testing.T) {
	leaveDays := map[string]bool{"2025-06-02": true}
	cls := ClassifyDay(monday, weekdaySchedule(), nil, leaveDays, nil, testConfig(), monday.Add(23*time.Hour))
	assert.Equal(t, StatusLeave, cls.Status)
}

func TestClassifyDay_FutureDate(t *testing.T) {
	cls := ClassifyDay(monday.AddDate(0, 0, 3), weekdaySchedule(), nil, nil, nil, testConfig(), monday)
	assert.Equal(t, StatusFuture, cls.Status)
}

func TestClassifyDay_WorkedDurationTruncated(t *testing.T) {
	events := []attendance.Event{
		eventAt(monday.Add(9*time.Hour), attendance.TypeCheckIn),
		eventAt(monday.Add(17*time.Hour+42*time.Minute+50*time.Second), attendance.TypeCheckOut),
	}

	cls := ClassifyDay(monday, weekdaySchedule(), nil, nil, events, testConfig(), monday.Add(23*time.Hour))
	assert.Equal(t, "8h 42m", cls.WorkedDuration)
}

func TestClassifyDay_Idempotent(t *testing.T) {
	events := []attendance.Event{
		eventAt(monday.Add(9*time.Hour+30*time.Minute), attendance.TypeCheckIn),
		eventAt(monday.Add(18*time.Hour), attendance.TypeCheckOut),
	}
	today := monday.Add(23 * time.Hour)

	first := ClassifyDay(monday, weekdaySchedule(), nil, nil, events, testConfig(), today)
	second := ClassifyDay(monday, weekdaySchedule(), nil, nil, events, testConfig(), today)
	assert.Equal(t, first, second)
}

func TestSummarize_ZeroCheckInsFullMonth(t *testing.T) {
	// June 2025: 30 days, 21 weekdays. Viewed from July, no future days.
	today := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	sum := Summarize(2025, time.June, time.Time{}, weekdaySchedule(), nil, nil, nil, testConfig(), today)

	assert.Equal(t, 30, sum.TotalDays)
	assert.Equal(t, 21, sum.WorkingDays)
	assert.Equal(t, 0, sum.PresentDays)
	assert.Equal(t, 21, sum.AbsentDays)
	assert.Equal(t, 9, sum.LeaveDays)
}

func TestSummarize_CurrentMonthExcludesFutureDays(t *testing.T) {
	// Viewed mid-month: only elapsed days count.
	today := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	sum := Summarize(2025, time.June, time.Time{}, weekdaySchedule(), nil, nil, nil, testConfig(), today)

	assert.Equal(t, 10, sum.TotalDays)
	assert.Equal(t, 7, sum.WorkingDays) // 2 weekends of 2025-06-01..10 hold 3 rest days
	assert.Equal(t, 3, sum.LeaveDays)
}

func TestSummarize_ExcludesDaysBeforeJoinDate(t *testing.T) {
	joinDate := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	sum := Summarize(2025, time.June, joinDate, weekdaySchedule(), nil, nil, nil, testConfig(), today)

	// June 16-30: 15 days, 11 weekdays.
	assert.Equal(t, 15, sum.TotalDays)
	assert.Equal(t, 11, sum.WorkingDays)
}

func TestSummarize_Invariants(t *testing.T) {
	today := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	sched := weekdaySchedule()
	holidays := map[string]string{"2025-06-05": "Festival"}

	var events []attendance.Event
	// Present on the first two Mondays, late on one Tuesday, half-day on one Wednesday.
	events = append(events,
		eventAt(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), attendance.TypeCheckIn),
		eventAt(time.Date(2025, 6, 9, 9, 5, 0, 0, time.UTC), attendance.TypeCheckIn),
		eventAt(time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC), attendance.TypeCheckIn),
		eventAt(time.Date(2025, 6, 11, 10, 30, 0, 0, time.UTC), attendance.TypeCheckIn),
	)

	sum := Summarize(2025, time.June, time.Time{}, sched, holidays, nil, events, testConfig(), today)

	assert.Equal(t, sum.WorkingDays, sum.PresentDays+sum.AbsentDays)
	assert.Equal(t, sum.TotalDays, sum.WorkingDays+sum.LeaveDays)
	assert.Equal(t, 4, sum.PresentDays)
	assert.Equal(t, 1, sum.LateDays)
	assert.Equal(t, 1, sum.HalfDays)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "8h 0m", FormatDuration(8*time.Hour))
	assert.Equal(t, "0h 59m", FormatDuration(59*time.Minute+59*time.Second))
	assert.Equal(t, "0h 0m", FormatDuration(-time.Minute))
}
