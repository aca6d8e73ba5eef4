package billing

import "time"

// QuarterStart returns the first day of the calendar quarter containing d.
func QuarterStart(d time.Time) time.Time {
	month := time.Month(((int(d.Month())-1)/3)*3 + 1)
	return time.Date(d.Year(), month, 1, 0, 0, 0, 0, time.UTC)
}

func midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// daysInclusive counts calendar days from a to b, counting both ends.
func daysInclusive(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a))/(24*time.Hour)) + 1
}

// ProrateQuarterly scales an annual price down to the portion of the
// quarter ending on quarterEnd that a record starting on start is
// billable for.
//
// Day counts are inclusive calendar days: a start on the quarter's
// first day covers every day of the quarter and is billed the full
// quarterly price with no rounding. A start after quarterEnd owes
// nothing; callers are expected to omit the charge line entirely in
// that case (see Billable).
func ProrateQuarterly(annualPrice float64, start, quarterEnd time.Time) float64 {
	quarterly := annualPrice / 4
	qs := QuarterStart(quarterEnd)
	s := midnight(start)
	if !s.After(qs) {
		return quarterly
	}
	if s.After(midnight(quarterEnd)) {
		return 0
	}
	billable := daysInclusive(s, quarterEnd)
	total := daysInclusive(qs, quarterEnd)
	return quarterly * float64(billable) / float64(total)
}

// Billable reports whether a record starting on start owes anything for
// the quarter ending on quarterEnd.
func Billable(start, quarterEnd time.Time) bool {
	return !midnight(start).After(midnight(quarterEnd))
}
