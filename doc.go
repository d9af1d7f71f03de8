// Package xirr computes the internal rate of return of a series of
// payments made on irregular dates, the XIRR function found in
// spreadsheet applications.
//
// The solver is generic over the calendar type: any date type that can
// report a signed day count to another date (see [PaymentDate]) can be
// used directly. The package ships two such types: [Time], a thin
// adapter over the standard library's time.Time, and the day-granular
// Date from the date subpackage.
//
//	payments := []xirr.Payment[date.Date]{
//		{Amount: -1000.0, Date: date.MustParse("2015-06-11")},
//		{Amount: -9000.0, Date: date.MustParse("2015-07-21")},
//		{Amount: 20000.0, Date: date.MustParse("2018-06-10")},
//		{Amount: -3000.0, Date: date.MustParse("2015-10-17")},
//	}
//	rate, err := xirr.Compute(payments)
//
// A valid payment series must contain at least one positive and one
// negative amount; anything else is rejected with [ErrInvalidPayments]
// before any numerical work. When the series is valid but Newton's
// method finds no rate, Compute returns NaN rather than an error, so
// that the result composes with ordinary floating-point arithmetic the
// way a spreadsheet cell would.
package xirr
