package budget

import (
	"testing"
	"time"

	"github.com/paisatrack/backend/internal/domain/entity"
)

func TestPeriodWindow(t *testing.T) {
	// A fixed non-UTC zone exercises local-calendar bucketing.
	ist := time.FixedZone("IST", 5*3600+1800)
	// Friday, August 15th.
	now := time.Date(2025, time.August, 15, 13, 45, 0, 0, ist)

	cases := []struct {
		name      string
		period    entity.BudgetPeriod
		wantStart time.Time
		wantNext  time.Time
	}{
		{
			name:      "daily starts at local midnight",
			period:    entity.BudgetPeriodDaily,
			wantStart: time.Date(2025, time.August, 15, 0, 0, 0, 0, ist),
			wantNext:  time.Date(2025, time.August, 16, 0, 0, 0, 0, ist),
		},
		{
			name:      "weekly starts on Sunday",
			period:    entity.BudgetPeriodWeekly,
			wantStart: time.Date(2025, time.August, 10, 0, 0, 0, 0, ist),
			wantNext:  time.Date(2025, time.August, 17, 0, 0, 0, 0, ist),
		},
		{
			name:      "monthly starts on the first",
			period:    entity.BudgetPeriodMonthly,
			wantStart: time.Date(2025, time.August, 1, 0, 0, 0, 0, ist),
			wantNext:  time.Date(2025, time.September, 1, 0, 0, 0, 0, ist),
		},
		{
			name:      "quarterly starts in July for August",
			period:    entity.BudgetPeriodQuarterly,
			wantStart: time.Date(2025, time.July, 1, 0, 0, 0, 0, ist),
			wantNext:  time.Date(2025, time.October, 1, 0, 0, 0, 0, ist),
		},
		{
			name:      "yearly starts on January first",
			period:    entity.BudgetPeriodYearly,
			wantStart: time.Date(2025, time.January, 1, 0, 0, 0, 0, ist),
			wantNext:  time.Date(2026, time.January, 1, 0, 0, 0, 0, ist),
		},
		{
			name:      "unknown period falls back to monthly",
			period:    entity.BudgetPeriod("fortnightly"),
			wantStart: time.Date(2025, time.August, 1, 0, 0, 0, 0, ist),
			wantNext:  time.Date(2025, time.September, 1, 0, 0, 0, 0, ist),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := PeriodWindow(tc.period, now)

			if !start.Equal(tc.wantStart) {
				t.Errorf("expected start %v, got %v", tc.wantStart, start)
			}

			wantEnd := tc.wantNext.Add(-time.Millisecond)
			if !end.Equal(wantEnd) {
				t.Errorf("expected end %v, got %v", wantEnd, end)
			}
		})
	}

	t.Run("first quarter month maps to itself", func(t *testing.T) {
		january := time.Date(2025, time.January, 20, 8, 0, 0, 0, ist)
		start, _ := PeriodWindow(entity.BudgetPeriodQuarterly, january)

		want := time.Date(2025, time.January, 1, 0, 0, 0, 0, ist)
		if !start.Equal(want) {
			t.Errorf("expected start %v, got %v", want, start)
		}
	})
}

func TestPeriodDayCounting(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, time.August, 15, 13, 45, 0, 0, ist)
	start, end := PeriodWindow(entity.BudgetPeriodMonthly, now)

	t.Run("periodDays counts the full window", func(t *testing.T) {
		if got := periodDays(start, end); got != 31 {
			t.Errorf("expected 31 days in August, got %d", got)
		}
	})

	t.Run("daysRemaining is the total minus the elapsed days", func(t *testing.T) {
		// 31 total, 15 elapsed by the afternoon of the 15th.
		if got := daysRemaining(start, end, now); got != 16 {
			t.Errorf("expected 16 days remaining, got %d", got)
		}
	})

	t.Run("daysRemaining is the full window at the start", func(t *testing.T) {
		if got := daysRemaining(start, end, start); got != 31 {
			t.Errorf("expected 31 days remaining, got %d", got)
		}
	})

	t.Run("daysRemaining is zero past the window", func(t *testing.T) {
		after := end.Add(time.Hour)
		if got := daysRemaining(start, end, after); got != 0 {
			t.Errorf("expected 0 days remaining, got %d", got)
		}
	})

	t.Run("daysElapsed counts partial days as full", func(t *testing.T) {
		if got := daysElapsed(start, now); got != 15 {
			t.Errorf("expected 15 days elapsed, got %d", got)
		}
	})

	t.Run("daysElapsed is zero at the window start", func(t *testing.T) {
		if got := daysElapsed(start, start); got != 0 {
			t.Errorf("expected 0 days elapsed at start, got %d", got)
		}
	})
}
