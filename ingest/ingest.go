// Package ingest reads sales exports from CSV into raw transactions.
// Columns are resolved by header name so exports with reordered or
// extra columns load the same, and cell-level problems degrade into
// zero values instead of aborting the load.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
)

// Transaction columns of the sales export.
const (
	colDate       = "Date"
	colTime       = "Time"
	colWeekday    = "Weekday"
	colCoffeeName = "coffee_name"
	colCashType   = "cash_type"
	colMoney      = "money"
)

// Table is a parsed CSV export: the header row plus every data row,
// cells kept as raw strings.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of name in the header, -1 when the
// column is absent.
func (t *Table) ColumnIndex(name string) int {
	for i, column := range t.Columns {
		if column == name {
			return i
		}
	}
	return -1
}

// Field returns the named cell of row, "" when the column is absent or
// the row is too short to carry it.
func (t *Table) Field(row []string, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ReadTable parses a CSV export from r. The first row is the header.
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	// ragged rows are a data-quality concern, not a parse failure
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("csv has no header row")
	}
	return &Table{Columns: records[0], Rows: records[1:]}, nil
}

// ReadTableFile opens path and parses it with ReadTable.
func ReadTableFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()
	return ReadTable(file)
}

// Transactions maps table rows onto raw transactions. A missing column
// leaves its field blank and a malformed money cell parses to zero;
// both degradations surface later through the refdata fallbacks and
// the data checks, never as a load error.
func Transactions(t *Table) []sales.Transaction {
	out := make([]sales.Transaction, len(t.Rows))
	for i, row := range t.Rows {
		money, _ := strconv.ParseFloat(strings.TrimSpace(t.Field(row, colMoney)), 64)
		out[i] = sales.Transaction{
			Date:       t.Field(row, colDate),
			Time:       t.Field(row, colTime),
			Weekday:    t.Field(row, colWeekday),
			CoffeeName: t.Field(row, colCoffeeName),
			CashType:   t.Field(row, colCashType),
			Money:      money,
		}
	}
	return out
}

// LoadTransactionsFile reads the export at path and maps it to raw
// transactions in one step.
func LoadTransactionsFile(path string) ([]sales.Transaction, error) {
	table, err := ReadTableFile(path)
	if err != nil {
		return nil, err
	}
	return Transactions(table), nil
}
