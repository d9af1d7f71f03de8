// Package cmd implements the CLI application to compute the internal
// rate of return of dated cash flows.
package cmd

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/etnz/xirr"
	"github.com/etnz/xirr/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&computeCmd{}, "")
	c.Register(&sheetCmd{}, "")
}

// flow is one parsed cash flow. The amount is kept as an exact decimal
// for display; the solver works on its float64 value.
type flow struct {
	amount decimal.Decimal
	on     date.Date
}

// payments converts the parsed flows into the solver's payment series.
func payments(flows []flow) []xirr.Payment[date.Date] {
	ps := make([]xirr.Payment[date.Date], 0, len(flows))
	for _, f := range flows {
		ps = append(ps, xirr.Payment[date.Date]{Amount: f.amount.InexactFloat64(), Date: f.on})
	}
	return ps
}

// formatAmount renders an exact amount in the given currency, or as a
// plain decimal when no currency is set.
func formatAmount(v decimal.Decimal, currency string) string {
	if currency == "" {
		return v.String()
	}
	// the Money constructor is the one way to get a never-nil currency
	cur := money.New(0, currency).Currency()
	return cur.Formatter().Format(v.Shift(int32(cur.Fraction)).IntPart())
}

// printFlows lists the flows that are about to be solved.
func printFlows(flows []flow, currency string) {
	for _, f := range flows {
		fmt.Printf("%s  %16s\n", f.on, formatAmount(f.amount, currency))
	}
}

// printRate reports the computed rate, or the non-convergence sentinel.
func printRate(rate float64) subcommands.ExitStatus {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		fmt.Println("did not converge: no rate found for these payments")
		return subcommands.ExitFailure
	}
	fmt.Printf("XIRR: %.4f%%\n", 100*rate)
	return subcommands.ExitSuccess
}
