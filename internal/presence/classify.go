package presence

import (
	"fmt"
	"time"

	"github.com/Urbancode-IT/INOUT-sub000/internal/attendance"
)

// Day statuses derived from the raw event ledger.
const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusHalfDay = "HALF_DAY"
	StatusAbsent  = "ABSENT"
	StatusLeave   = "LEAVE"
	StatusFuture  = "FUTURE"
)

const dateLayout = "2006-01-02"

// Config holds the lateness rules in one place so they are defined and
// tested once, not duplicated across call sites.
type Config struct {
	GraceMinutes            int
	HalfDayThresholdMinutes int
	Location                *time.Location
}

func DefaultConfig() Config {
	return Config{
		GraceMinutes:            10,
		HalfDayThresholdMinutes: 60,
		Location:                time.Local,
	}
}

func (c Config) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}

// DaySchedule is one weekday's expected working window.
type DaySchedule struct {
	Start      string // "15:04", empty means no fixed start
	End        string
	IsLeaveDay bool
}

// WeekSchedule maps weekdays to schedules. A missing weekday reads as a
// rest day.
type WeekSchedule map[time.Weekday]DaySchedule

// DayClassification is the derived status of one calendar day. It is
// computed on demand and never persisted.
type DayClassification struct {
	Date           time.Time
	Status         string
	CheckIn        *attendance.Event
	CheckOut       *attendance.Event
	WorkedDuration string // "Xh Ym", empty without a completed pair
	LateMinutes    int    // minutes past the grace-adjusted start, 0 if on time
}

// MonthlySummary aggregates one employee month. Future days are excluded
// entirely, not counted as absent.
type MonthlySummary struct {
	TotalDays   int
	WorkingDays int
	PresentDays int
	AbsentDays  int
	LeaveDays   int
	LateDays    int
	HalfDays    int
}

// ClassifyDay derives the status of a single calendar day from that
// day's events plus schedule and holiday data. Deterministic for
// identical input.
func ClassifyDay(
	date time.Time,
	sched WeekSchedule,
	holidays map[string]string,
	leaveDays map[string]bool,
	dayEvents []attendance.Event,
	cfg Config,
	today time.Time,
) DayClassification {
	loc := cfg.location()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	cls := DayClassification{Date: day}

	if day.After(startOfDay(today, loc)) {
		cls.Status = StatusFuture
		return cls
	}

	key := day.Format(dateLayout)
	daySched, scheduled := sched[day.Weekday()]
	if _, isHoliday := holidays[key]; isHoliday || !scheduled || daySched.IsLeaveDay || leaveDays[key] {
		cls.Status = StatusLeave
		return cls
	}

	cls.CheckIn, cls.CheckOut = firstInLastOut(dayEvents)
	if cls.CheckIn == nil {
		cls.Status = StatusAbsent
		return cls
	}

	cls.Status = StatusPresent
	if daySched.Start != "" {
		if start, err := time.ParseInLocation("15:04", daySched.Start, loc); err == nil {
			scheduledStart := time.Date(day.Year(), day.Month(), day.Day(),
				start.Hour(), start.Minute(), 0, 0, loc)
			graceEnd := scheduledStart.Add(time.Duration(cfg.GraceMinutes) * time.Minute)

			diff := int(cls.CheckIn.OccurredAt.In(loc).Sub(graceEnd).Minutes())
			if diff >= cfg.HalfDayThresholdMinutes {
				cls.Status = StatusHalfDay
				cls.LateMinutes = diff
			} else if diff > 0 {
				cls.Status = StatusLate
				cls.LateMinutes = diff
			}
		}
	}

	if cls.CheckIn != nil && cls.CheckOut != nil {
		cls.WorkedDuration = FormatDuration(cls.CheckOut.OccurredAt.Sub(cls.CheckIn.OccurredAt))
	}

	return cls
}

// BuildMonth classifies every calendar day of the month from its start
// (or the employee's join date, whichever is later) through today, and
// rolls the classifications up into a summary.
func BuildMonth(
	year int,
	month time.Month,
	joinDate time.Time,
	sched WeekSchedule,
	holidays map[string]string,
	leaveDays map[string]bool,
	events []attendance.Event,
	cfg Config,
	today time.Time,
) ([]DayClassification, MonthlySummary) {
	loc := cfg.location()

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	if end := startOfDay(today, loc); end.Before(last) {
		last = end
	}
	if !joinDate.IsZero() {
		if join := startOfDay(joinDate, loc); join.After(first) {
			first = join
		}
	}

	byDay := groupByDay(events, loc)

	var days []DayClassification
	var sum MonthlySummary

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		cls := ClassifyDay(d, sched, holidays, leaveDays, byDay[d.Format(dateLayout)], cfg, today)
		days = append(days, cls)

		sum.TotalDays++
		switch cls.Status {
		case StatusLeave:
			sum.LeaveDays++
		case StatusAbsent:
			sum.AbsentDays++
		case StatusPresent:
			sum.PresentDays++
		case StatusLate:
			sum.PresentDays++
			sum.LateDays++
		case StatusHalfDay:
			sum.PresentDays++
			sum.HalfDays++
		}
	}

	sum.WorkingDays = sum.TotalDays - sum.LeaveDays
	return days, sum
}

// Summarize derives the per-month presence counts for one employee.
func Summarize(
	year int,
	month time.Month,
	joinDate time.Time,
	sched WeekSchedule,
	holidays map[string]string,
	leaveDays map[string]bool,
	events []attendance.Event,
	cfg Config,
	today time.Time,
) MonthlySummary {
	_, sum := BuildMonth(year, month, joinDate, sched, holidays, leaveDays, events, cfg, today)
	return sum
}

// FormatDuration renders a duration as "Xh Ym" with minutes truncated.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func firstInLastOut(dayEvents []attendance.Event) (in, out *attendance.Event) {
	for i := range dayEvents {
		e := &dayEvents[i]
		switch e.Type {
		case attendance.TypeCheckIn:
			if in == nil || e.OccurredAt.Before(in.OccurredAt) {
				in = e
			}
		case attendance.TypeCheckOut:
			if out == nil || e.OccurredAt.After(out.OccurredAt) {
				out = e
			}
		}
	}
	return in, out
}

func groupByDay(events []attendance.Event, loc *time.Location) map[string][]attendance.Event {
	byDay := make(map[string][]attendance.Event, len(events))
	for _, e := range events {
		key := e.OccurredAt.In(loc).Format(dateLayout)
		byDay[key] = append(byDay[key], e)
	}
	return byDay
}
