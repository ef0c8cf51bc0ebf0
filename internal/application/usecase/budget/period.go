// Package budget contains budget-related use cases and the progress engine.
package budget

import (
	"time"

	"github.com/paisatrack/backend/internal/domain/entity"
)

// PeriodWindow returns the inclusive [start, end] window of the period cycle
// containing now. Boundaries are computed in now's location, so a server
// running in IST buckets transactions by IST calendar days. Weeks start on
// Sunday, quarters on Jan/Apr/Jul/Oct. The end sits one millisecond before
// the next cycle begins.
func PeriodWindow(period entity.BudgetPeriod, now time.Time) (start, end time.Time) {
	year, month, day := now.Date()
	loc := now.Location()

	var next time.Time
	switch period {
	case entity.BudgetPeriodDaily:
		start = time.Date(year, month, day, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 0, 1)
	case entity.BudgetPeriodWeekly:
		start = time.Date(year, month, day, 0, 0, 0, 0, loc).AddDate(0, 0, -int(now.Weekday()))
		next = start.AddDate(0, 0, 7)
	case entity.BudgetPeriodMonthly:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 1, 0)
	case entity.BudgetPeriodQuarterly:
		quarterMonth := month - (month-1)%3
		start = time.Date(year, quarterMonth, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 3, 0)
	case entity.BudgetPeriodYearly:
		start = time.Date(year, 1, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(1, 0, 0)
	default:
		// Unknown periods fall back to monthly; validation upstream should
		// have rejected them already.
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 1, 0)
	}

	return start, next.Add(-time.Millisecond)
}

// periodDays is the total day span of a window, counting partial days as full.
func periodDays(start, end time.Time) int {
	return int(ceilDiv(end.Sub(start), 24*time.Hour))
}

// daysRemaining counts the window days not yet consumed, never negative.
func daysRemaining(start, end, now time.Time) int {
	remaining := periodDays(start, end) - daysElapsed(start, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// daysElapsed counts the days consumed since start, counting a partial day
// as full. It is zero at the exact window start.
func daysElapsed(start, now time.Time) int {
	if !now.After(start) {
		return 0
	}
	return int(ceilDiv(now.Sub(start), 24*time.Hour))
}

func ceilDiv(d, unit time.Duration) int64 {
	q := int64(d / unit)
	if d%unit != 0 {
		q++
	}
	return q
}
