package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Column names of the gas_data sheet, in storage order.
const (
	ColumnDate         = "date"
	ColumnGas          = "gas"
	ColumnTotalMileage = "total_mileage"
	ColumnMileage      = "mileage"
	ColumnGasMileage   = "gas_mileage"
)

// DefaultHeader is written when the store holds no header row yet.
var DefaultHeader = []string{ColumnDate, ColumnGas, ColumnTotalMileage, ColumnMileage, ColumnGasMileage}

// Record is one refuel event.
// Mileage and GasMileage are nil on the seed row, which has no predecessor.
type Record struct {
	Date         string   `json:"date" example:"2024/05/01"`
	Gas          float64  `json:"gas" example:"20"`
	TotalMileage int64    `json:"total_mileage" example:"10300"`
	Mileage      *int64   `json:"mileage,omitempty" example:"300"`
	GasMileage   *float64 `json:"gas_mileage,omitempty" example:"15"`
}

// Row renders the record as sheet cells in DefaultHeader order.
func (r Record) Row() []string {
	row := []string{
		r.Date,
		strconv.FormatFloat(r.Gas, 'f', -1, 64),
		strconv.FormatInt(r.TotalMileage, 10),
		"",
		"",
	}
	if r.Mileage != nil {
		row[3] = strconv.FormatInt(*r.Mileage, 10)
	}
	if r.GasMileage != nil {
		row[4] = strconv.FormatFloat(*r.GasMileage, 'f', 1, 64)
	}
	return row
}

// RowFor renders the record in the column order of header.
// Columns the record does not know are left blank.
func (r Record) RowFor(header []string) []string {
	cells := r.Row()
	row := make([]string, len(header))
	for i, h := range header {
		for j, name := range DefaultHeader {
			if strings.TrimSpace(h) == name {
				row[i] = cells[j]
				break
			}
		}
	}
	return row
}

// FormInput is the raw text the user typed into the form.
type FormInput struct {
	Date         string `json:"date" form:"date" example:"2024/05/01"`
	Gas          string `json:"gas" form:"gas" example:"20"`
	TotalMileage string `json:"total_mileage" form:"total_mileage" example:"10300"`
}

// Table is the raw sheet contents: a header row plus data rows in storage order.
// Cells stay as text so that rewriting the table leaves existing rows untouched.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable copies the header and rows into a fresh table.
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{Header: append([]string(nil), header...)}
	for _, row := range rows {
		t.Rows = append(t.Rows, append([]string(nil), row...))
	}
	return t
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Column returns the index of name in the header, or -1.
func (t *Table) Column(name string) int {
	if t == nil {
		return -1
	}
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at row i of the named column.
// Short rows (trailing blank cells trimmed by the store) read as "".
func (t *Table) Cell(i int, name string) (string, error) {
	col := t.Column(name)
	if col < 0 {
		return "", fmt.Errorf("column %q not found in header %v", name, t.Header)
	}
	if i < 0 || i >= len(t.Rows) {
		return "", fmt.Errorf("row %d out of range (%d rows)", i, len(t.Rows))
	}
	row := t.Rows[i]
	if col >= len(row) {
		return "", nil
	}
	return strings.TrimSpace(row[col]), nil
}

// Record parses row i into a Record. Blank derived cells stay nil.
func (t *Table) Record(i int) (Record, error) {
	var r Record
	var err error
	if r.Date, err = t.Cell(i, ColumnDate); err != nil {
		return r, err
	}

	gas, err := t.Cell(i, ColumnGas)
	if err != nil {
		return r, err
	}
	if r.Gas, err = strconv.ParseFloat(gas, 64); err != nil {
		return r, fmt.Errorf("row %d: invalid gas %q: %w", i, gas, err)
	}

	total, err := t.Cell(i, ColumnTotalMileage)
	if err != nil {
		return r, err
	}
	if r.TotalMileage, err = strconv.ParseInt(total, 10, 64); err != nil {
		return r, fmt.Errorf("row %d: invalid total_mileage %q: %w", i, total, err)
	}

	mileage, err := t.Cell(i, ColumnMileage)
	if err != nil {
		return r, err
	}
	if mileage != "" {
		v, err := strconv.ParseInt(mileage, 10, 64)
		if err != nil {
			return r, fmt.Errorf("row %d: invalid mileage %q: %w", i, mileage, err)
		}
		r.Mileage = &v
	}

	gasMileage, err := t.Cell(i, ColumnGasMileage)
	if err != nil {
		return r, err
	}
	if gasMileage != "" {
		v, err := strconv.ParseFloat(gasMileage, 64)
		if err != nil {
			return r, fmt.Errorf("row %d: invalid gas_mileage %q: %w", i, gasMileage, err)
		}
		r.GasMileage = &v
	}
	return r, nil
}

// Records parses every row.
func (t *Table) Records() ([]Record, error) {
	records := make([]Record, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r, err := t.Record(i)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
