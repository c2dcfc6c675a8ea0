package importer

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is the format-independent view of an uploaded spreadsheet:
// a header row plus data rows. Both CSV and XLSX files reduce to this.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row maps header names to raw cell values for one data row.
type Row map[string]string

// Value returns the trimmed cell under col. ok is false when the column
// is absent from the row or the trimmed value is empty, so callers can
// treat missing and blank cells the same way.
func (r Row) Value(col string) (string, bool) {
	raw, present := r[col]
	if !present {
		return "", false
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// ReadTable parses data into a Table based on the file extension.
// Files with no data rows yield an empty Rows slice, not an error.
func ReadTable(data []byte, filename string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(data)
	case ".xlsx":
		return readXLSX(data)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func readCSV(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return &Table{}, nil
		}
		return nil, &MalformedFileError{Err: err}
	}

	table := &Table{Columns: trimAll(header)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedFileError{Err: err}
		}
		table.Rows = append(table.Rows, zipRow(table.Columns, record))
	}
	return table, nil
}

func readXLSX(data []byte) (*Table, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	table := &Table{Columns: trimAll(rows[0])}
	for _, record := range rows[1:] {
		table.Rows = append(table.Rows, zipRow(table.Columns, record))
	}
	return table, nil
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

// zipRow pairs header names with cell values. Short rows leave the
// trailing columns absent; extra cells beyond the header are dropped.
func zipRow(columns, record []string) Row {
	row := make(Row, len(columns))
	for i, col := range columns {
		if i < len(record) {
			row[col] = record[i]
		}
	}
	return row
}
