package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/xirr"
	"github.com/etnz/xirr/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// computeCmd holds the flags for the 'compute' subcommand.
type computeCmd struct {
	show     bool
	currency string
}

func (*computeCmd) Name() string     { return "compute" }
func (*computeCmd) Synopsis() string { return "compute the rate of return of cash flows in a CSV file" }
func (*computeCmd) Usage() string {
	return `xirrcalc compute [-show] [-currency <code>] <file.csv>

  Computes the internal rate of return of the cash flows listed in the
  file, one "amount,date" pair per line, dates in ISO format:

    -1000.0,2015-06-11
    20000.0,2018-06-10
`
}

func (c *computeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.show, "show", false, "List the cash flows before the result")
	f.StringVar(&c.currency, "currency", "", "Currency code used to display amounts (e.g. EUR)")
}

func (c *computeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "compute expects exactly one CSV file")
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	flows, err := readFlows(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	if c.show {
		printFlows(flows, c.currency)
	}

	rate, err := xirr.Compute(payments(flows))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing rate: %v\n", err)
		return subcommands.ExitFailure
	}
	return printRate(rate)
}

// readFlows parses a headerless "amount,date" CSV file. Amounts are
// parsed as exact decimals, the way all monetary input is read.
func readFlows(filename string) ([]flow, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	var flows []flow
	for line := 1; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			return flows, nil
		}
		if err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q: %w", line, record[0], err)
		}
		on, err := date.Parse(record[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		flows = append(flows, flow{amount: amount, on: on})
	}
}
