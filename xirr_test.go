package xirr

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/etnz/xirr/date"
)

// tolerance mirrors the solver's own convergence tolerance.
const tolerance = 1e-10

var _ PaymentDate[date.Date] = date.Date{}

func TestCompute(t *testing.T) {
	payments := []Payment[date.Date]{
		pay(-1000.0, "2015-06-11"),
		pay(-9000.0, "2015-07-21"),
		pay(20000.0, "2018-06-10"),
		pay(-3000.0, "2015-10-17"),
	}
	got, err := Compute(payments)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if want := 0.1635371584432641; math.Abs(got-want) > tolerance {
		t.Errorf("Compute() = %v, want %v", got, want)
	}
}

func TestComputeSingleRedemption(t *testing.T) {
	payments := loadPayments(t, "single_redemption.csv")
	got, err := Compute(payments)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if want := 0.1361695793742; math.Abs(got-want) > tolerance {
		t.Errorf("Compute() = %v, want %v", got, want)
	}
}

func TestComputeRandom(t *testing.T) {
	payments := loadPayments(t, "random.csv")
	got, err := Compute(payments)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if want := 0.6924974337277; math.Abs(got-want) > tolerance {
		t.Errorf("Compute() = %v, want %v", got, want)
	}
}

func TestComputeSameSign(t *testing.T) {
	negative := []Payment[date.Date]{
		pay(-100.0, "2016-06-11"),
		pay(-200.0, "2018-06-11"),
	}
	if _, err := Compute(negative); !errors.Is(err, ErrInvalidPayments) {
		t.Errorf("Compute(all negative) error = %v, want ErrInvalidPayments", err)
	}

	positive := []Payment[date.Date]{
		pay(100.0, "2016-06-11"),
		pay(200.0, "2018-06-11"),
	}
	if _, err := Compute(positive); !errors.Is(err, ErrInvalidPayments) {
		t.Errorf("Compute(all positive) error = %v, want ErrInvalidPayments", err)
	}
}

func TestComputeInvalidSeries(t *testing.T) {
	cases := map[string][]Payment[date.Date]{
		"empty": nil,
		"zeros": {pay(0, "2020-01-01"), pay(0, "2020-06-01")},
		// a zero amount does not count as the missing positive leg
		"zero and negative": {pay(0, "2020-01-01"), pay(-500.0, "2020-06-01")},
	}
	for name, payments := range cases {
		if _, err := Compute(payments); !errors.Is(err, ErrInvalidPayments) {
			t.Errorf("Compute(%s) error = %v, want ErrInvalidPayments", name, err)
		}
	}
}

func TestComputeOrderIndependence(t *testing.T) {
	payments := loadPayments(t, "random.csv")
	want, err := Compute(payments)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	reversed := make([]Payment[date.Date], len(payments))
	for i, p := range payments {
		reversed[len(payments)-1-i] = p
	}
	got, err := Compute(reversed)
	if err != nil {
		t.Fatalf("Compute(reversed) error = %v", err)
	}
	// the sort inside is canonical, so the result is bit-identical
	if got != want {
		t.Errorf("Compute(reversed) = %v, want %v", got, want)
	}
}

func TestComputeIdempotent(t *testing.T) {
	payments := loadPayments(t, "single_redemption.csv")
	first, err := Compute(payments)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	second, err := Compute(payments)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if first != second {
		t.Errorf("Compute() = %v then %v, want bit-identical results", first, second)
	}
}

// TestComputeNonConvergent exercises a series Newton's method cannot
// solve: offsetting flows packed on three consecutive days leave the
// derivative near zero, every step overshoots, and the whole guess
// sweep runs dry. The designed outcome is NaN, not an error.
func TestComputeNonConvergent(t *testing.T) {
	payments := []Payment[date.Date]{
		pay(10000.0, "2020-10-19"),
		pay(-10000.0, "2020-10-19"),
		pay(5000.0, "2020-10-20"),
		pay(-5000.0, "2020-10-20"),
		pay(2000.0, "2020-10-21"),
		pay(-2000.0, "2020-10-21"),
		pay(0.01, "2020-10-21"),
	}
	got, err := Compute(payments)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Compute() = %v, want NaN", got)
	}
}

func TestComputeWithTime(t *testing.T) {
	on := func(y int, m time.Month, d int) Time {
		return Time{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
	}
	payments := []Payment[Time]{
		{Amount: -1000.0, Date: on(2015, time.June, 11)},
		{Amount: -9000.0, Date: on(2015, time.July, 21)},
		{Amount: 20000.0, Date: on(2018, time.June, 10)},
		{Amount: -3000.0, Date: on(2015, time.October, 17)},
	}
	got, err := Compute(payments)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if want := 0.1635371584432641; math.Abs(got-want) > tolerance {
		t.Errorf("Compute() = %v, want %v", got, want)
	}
}

func TestTimeDaysSince(t *testing.T) {
	a := Time{time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)}
	b := Time{time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)}
	if got := b.DaysSince(a); got != 366 {
		t.Errorf("DaysSince() = %d, want 366", got)
	}
	if got := a.DaysSince(b); got != -366 {
		t.Errorf("DaysSince() = %d, want -366", got)
	}
}
