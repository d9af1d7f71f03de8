package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/xirr"
	"github.com/etnz/xirr/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// sheetCmd holds the flags for the 'sheet' subcommand.
type sheetCmd struct {
	sheet    string
	show     bool
	currency string
}

func (*sheetCmd) Name() string { return "sheet" }
func (*sheetCmd) Synopsis() string {
	return "compute the rate of return of cash flows in a spreadsheet"
}
func (*sheetCmd) Usage() string {
	return `xirrcalc sheet [-sheet <name>] [-show] [-currency <code>] <file.xlsx>

  Computes the internal rate of return of the cash flows in the first
  two columns of a spreadsheet, one "amount, date" pair per row, dates
  in ISO format. A first row that does not parse as an amount is
  treated as a header and skipped.
`
}

func (c *sheetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sheet, "sheet", "", "Sheet to read. Defaults to the first sheet of the workbook.")
	f.BoolVar(&c.show, "show", false, "List the cash flows before the result")
	f.StringVar(&c.currency, "currency", "", "Currency code used to display amounts (e.g. EUR)")
}

func (c *sheetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "sheet expects exactly one spreadsheet file")
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	flows, err := readSheetFlows(filename, c.sheet)
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

// readSheetFlows reads "amount, date" rows from one sheet of an xlsx
// workbook. An empty sheet name selects the first sheet.
func readSheetFlows(filename, sheet string) ([]flow, error) {
	wb, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if sheet == "" {
		sheet = wb.GetSheetName(0)
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var flows []flow
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("sheet %q row %d: want amount and date cells, got %d cell(s)", sheet, i+1, len(row))
		}
		amount, err := decimal.NewFromString(row[0])
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, fmt.Errorf("sheet %q row %d: invalid amount %q: %w", sheet, i+1, row[0], err)
		}
		on, err := date.Parse(row[1])
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
		}
		flows = append(flows, flow{amount: amount, on: on})
	}
	return flows, nil
}
