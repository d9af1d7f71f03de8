package xirr

import "time"

// Time adapts a time.Time to the PaymentDate capability, for callers
// whose flows are already dated with the standard library. The wrapped
// values should share a location and a time of day (midnight UTC is
// the usual choice), otherwise sub-day offsets bleed into the day
// count.
type Time struct {
	time.Time
}

// DaysSince returns the number of whole days from other to t.
func (t Time) DaysSince(other Time) int {
	return int(t.Sub(other.Time).Hours() / 24)
}

var _ PaymentDate[Time] = Time{}
