package xirr

import (
	"errors"
	"math"
	"slices"
)

const (
	// maxError is the convergence tolerance on the rate between two
	// Newton-Raphson steps.
	maxError = 1e-10
	// maxIterations caps a single Newton-Raphson run. Some payment
	// series (offsetting flows on identical dates) make the iteration
	// oscillate instead of converging; the cap turns those into NaN.
	maxIterations = 50
	// daysPerYear converts a day count into the annualized exponent.
	daysPerYear = 365.0
)

// ErrInvalidPayments is returned by [Compute] when the payment series
// does not contain both a negative and a positive amount.
var ErrInvalidPayments = errors.New("negative and positive payments are required")

// Payment is a single cash flow: money paid out (negative amount) or
// received (positive amount) on a given date.
type Payment[T PaymentDate[T]] struct {
	Amount float64
	Date   T
}

// Compute calculates the internal rate of return of a series of
// payments on irregular dates.
//
// It runs Newton's method with an initial guess of 0.1. If that does
// not converge, it retries with guesses from -0.99 to 0.99 in
// increments of 0.01, and returns NaN if none of them converge either.
// The input order is irrelevant: payments are sorted by date
// internally, and the earliest payment's date is the discounting epoch.
//
// Compute returns [ErrInvalidPayments] if the series does not contain
// both positive and negative payments. It never mutates the input and
// keeps no state between calls, so it is safe for concurrent use.
func Compute[T PaymentDate[T]](payments []Payment[T]) (float64, error) {
	if err := validate(payments); err != nil {
		return 0, err
	}

	sorted := slices.Clone(payments)
	slices.SortStableFunc(sorted, func(a, b Payment[T]) int {
		return a.Date.DaysSince(b.Date)
	})

	rate := computeWithGuess(sorted, 0.1)
	for guess := -0.99; guess < 1.0 && (math.IsNaN(rate) || math.IsInf(rate, 0)); guess += 0.01 {
		rate = computeWithGuess(sorted, guess)
	}
	return rate, nil
}

// validate checks that the series carries at least one payment in each
// direction. Zero amounts count for neither.
func validate[T PaymentDate[T]](payments []Payment[T]) error {
	var positive, negative bool
	for _, p := range payments {
		positive = positive || p.Amount > 0
		negative = negative || p.Amount < 0
	}
	if positive && negative {
		return nil
	}
	return ErrInvalidPayments
}

// computeWithGuess runs one Newton-Raphson iteration over the
// date-sorted payments, starting at guess. It returns the rate once
// two consecutive iterates are within maxError of each other, or NaN
// when the iteration budget runs out. A non-finite iterate (rate below
// -1 makes the discount power undefined) keeps the step error
// non-finite and falls through to NaN the same way.
func computeWithGuess[T PaymentDate[T]](sorted []Payment[T], guess float64) float64 {
	r, e := guess, 1.0
	for i := 0; i < maxIterations; i++ {
		if e <= maxError {
			return r
		}
		r1 := r - npv(sorted, r)/dnpv(sorted, r)
		e = math.Abs(r1 - r)
		r = r1
	}
	return math.NaN()
}

// npv computes the net present value of the date-sorted payments at
// the given annual rate, discounting each flow from the earliest
// payment's date.
func npv[T PaymentDate[T]](sorted []Payment[T], rate float64) float64 {
	result := 0.0
	for _, p := range sorted {
		result += p.Amount / math.Pow(1+rate, years(p, sorted[0]))
	}
	return result
}

// dnpv computes the first derivative of npv with respect to the rate.
func dnpv[T PaymentDate[T]](sorted []Payment[T], rate float64) float64 {
	result := 0.0
	for _, p := range sorted {
		t := years(p, sorted[0])
		result -= p.Amount * t / math.Pow(1+rate, t+1)
	}
	return result
}

// years returns the discounting exponent of p: days since the epoch
// payment, in fractional years.
func years[T PaymentDate[T]](p, epoch Payment[T]) float64 {
	return float64(p.Date.DaysSince(epoch.Date)) / daysPerYear
}
