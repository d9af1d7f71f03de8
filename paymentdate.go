package xirr

// PaymentDate is the calendar capability the solver requires of a
// payment's date: a signed day count to another date of the same type,
// positive when the receiver is the later one.
//
// The day count doubles as the ordering: d1 precedes d2 exactly when
// d1.DaysSince(d2) is negative. Implementations must be consistent
// here, returning zero only for dates that fall on the same day.
type PaymentDate[T any] interface {
	// DaysSince returns the number of days from other to this date.
	DaysSince(other T) int
}
