// Package valueobject defines immutable domain value objects.
package valueobject

import "time"

// Period represents a named reporting window on the dashboard.
type Period string

const (
	PeriodLast7Days  Period = "last7days"
	PeriodLast30Days Period = "last30days"
	PeriodThisMonth  Period = "this_month"
	PeriodLastMonth  Period = "last_month"
	PeriodThisYear   Period = "this_year"
	PeriodLastYear   Period = "last_year"
	PeriodAllTime    Period = "all_time"
)

// Valid reports whether p is one of the known period tokens.
func (p Period) Valid() bool {
	switch p {
	case PeriodLast7Days, PeriodLast30Days, PeriodThisMonth, PeriodLastMonth,
		PeriodThisYear, PeriodLastYear, PeriodAllTime:
		return true
	}
	return false
}

// DateRange is an inclusive calendar-date interval. A nil Start and End
// means the range is unbounded and no date filtering applies.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Unbounded reports whether the range places no restriction on dates.
func (r DateRange) Unbounded() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether t falls inside the range. Comparison is on
// calendar dates only; time-of-day is ignored on both sides.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOnly(t)
	if r.Start != nil && d.Before(DateOnly(*r.Start)) {
		return false
	}
	if r.End != nil && d.After(DateOnly(*r.End)) {
		return false
	}
	return true
}

// Resolve maps the period token to a concrete date range anchored at now.
// All endpoints are truncated to calendar dates, so two calls within the
// same day yield the same range. An unknown token falls back to the
// unbounded all-time range.
func (p Period) Resolve(now time.Time) DateRange {
	today := DateOnly(now)

	switch p {
	case PeriodLast7Days:
		start := today.AddDate(0, 0, -7)
		return DateRange{Start: &start, End: &today}

	case PeriodLast30Days:
		start := today.AddDate(0, 0, -30)
		return DateRange{Start: &start, End: &today}

	case PeriodThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return DateRange{Start: &start, End: &today}

	case PeriodLastMonth:
		firstOfThis := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		start := firstOfThis.AddDate(0, -1, 0)
		end := firstOfThis.AddDate(0, 0, -1)
		return DateRange{Start: &start, End: &end}

	case PeriodThisYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return DateRange{Start: &start, End: &today}

	case PeriodLastYear:
		start := time.Date(today.Year()-1, time.January, 1, 0, 0, 0, 0, today.Location())
		end := time.Date(today.Year()-1, time.December, 31, 0, 0, 0, 0, today.Location())
		return DateRange{Start: &start, End: &end}

	default:
		return DateRange{}
	}
}

// DateOnly truncates t to midnight of its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
