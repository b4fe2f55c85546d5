package transaction

import "time"

// Period identifies a relative date range for filtering transactions.
type Period string

const (
	PeriodThisMonth   Period = "this_month"
	PeriodLastMonth   Period = "last_month"
	PeriodLast3Months Period = "last_3_months"
	PeriodAll         Period = "all"
)

// PeriodRange resolves a period into concrete start and end dates relative
// to now. PeriodAll and unknown periods return nil bounds, meaning no date
// filter is applied.
func PeriodRange(period Period, now time.Time) (start, end *time.Time) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodThisMonth:
		s := monthStart
		e := monthStart.AddDate(0, 1, 0)
		return &s, &e
	case PeriodLastMonth:
		s := monthStart.AddDate(0, -1, 0)
		e := monthStart
		return &s, &e
	case PeriodLast3Months:
		s := monthStart.AddDate(0, -2, 0)
		e := monthStart.AddDate(0, 1, 0)
		return &s, &e
	default:
		return nil, nil
	}
}
