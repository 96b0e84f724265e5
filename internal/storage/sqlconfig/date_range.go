package sqlconfig

import "time"

// DateRange is an inclusive interval over transaction dates. A nil bound
// leaves that side unbounded.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// MonthRange covers every instant of the given calendar month in UTC. The
// end is one microsecond before the next month starts, the finest precision
// a Postgres timestamp can hold.
func MonthRange(year int, month time.Month) DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Microsecond)
	return DateRange{Start: &start, End: &end}
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// IsUnbounded reports whether neither side of the range is set.
func (r DateRange) IsUnbounded() bool {
	return r.Start == nil && r.End == nil
}
