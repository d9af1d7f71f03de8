package xirr

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/etnz/xirr/date"
)

// pay is a helper for tests to build a payment from a const amount and
// an ISO date literal.
func pay(amount float64, on string) Payment[date.Date] {
	return Payment[date.Date]{Amount: amount, Date: date.MustParse(on)}
}

// loadPayments reads a headerless "amount,date" CSV sample from testdata.
func loadPayments(t *testing.T, name string) []Payment[date.Date] {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("open sample: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read sample %s: %v", name, err)
	}
	payments := make([]Payment[date.Date], 0, len(records))
	for _, r := range records {
		amount, err := strconv.ParseFloat(r[0], 64)
		if err != nil {
			t.Fatalf("bad amount %q in %s: %v", r[0], name, err)
		}
		payments = append(payments, pay(amount, r[1]))
	}
	return payments
}
