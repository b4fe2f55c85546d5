package transaction

import (
	"testing"
	"time"
)

func TestPeriodRange(t *testing.T) {
	// Mid-month reference so month boundaries are unambiguous.
	now := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

	t.Run("this month", func(t *testing.T) {
		start, end := PeriodRange(PeriodThisMonth, now)
		if start == nil || end == nil {
			t.Fatal("expected bounds for this_month")
		}
		if want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
			t.Errorf("expected start %s, got %s", want, start)
		}
		if want := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
			t.Errorf("expected end %s, got %s", want, end)
		}
	})

	t.Run("last month", func(t *testing.T) {
		start, end := PeriodRange(PeriodLastMonth, now)
		if start == nil || end == nil {
			t.Fatal("expected bounds for last_month")
		}
		if want := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
			t.Errorf("expected start %s, got %s", want, start)
		}
		if want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
			t.Errorf("expected end %s, got %s", want, end)
		}
	})

	t.Run("last 3 months includes the current month", func(t *testing.T) {
		start, end := PeriodRange(PeriodLast3Months, now)
		if start == nil || end == nil {
			t.Fatal("expected bounds for last_3_months")
		}
		if want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
			t.Errorf("expected start %s, got %s", want, start)
		}
		if want := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
			t.Errorf("expected end %s, got %s", want, end)
		}
	})

	t.Run("all and unknown periods are unbounded", func(t *testing.T) {
		for _, p := range []Period{PeriodAll, Period("bogus"), Period("")} {
			start, end := PeriodRange(p, now)
			if start != nil || end != nil {
				t.Errorf("expected nil bounds for period %q", p)
			}
		}
	})
}
