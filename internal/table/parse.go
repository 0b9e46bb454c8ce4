package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptyFile is returned when an upload has no content at all.
	ErrEmptyFile = errors.New("empty file")

	// ErrMissingHeader is returned when the second line, which carries the
	// column labels, is absent.
	ErrMissingHeader = errors.New("missing header row on line 2")

	// ErrRaggedRow is returned when a data row has more cells than the header.
	ErrRaggedRow = errors.New("row has more cells than the header")

	// ErrTooManyRows is returned when a file exceeds the configured row limit.
	ErrTooManyRows = errors.New("too many rows")

	// ErrUnsupportedFormat is returned for uploads that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported file type")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes an uploaded results file, picking the format from the file
// name. The first line of every file is discarded and the second line holds
// the column labels. maxRows <= 0 disables the row limit.
func Parse(name string, data []byte, maxRows int) (Table, error) {
	var (
		t   Table
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		t, err = ParseCSV(bytes.NewReader(data))
	case ".xlsx", ".xlsm":
		t, err = ParseXLSX(bytes.NewReader(data))
	default:
		return Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
	if err != nil {
		return Table{}, err
	}
	if maxRows > 0 && len(t.Rows) > maxRows {
		return Table{}, fmt.Errorf("%w: %d > %d", ErrTooManyRows, len(t.Rows), maxRows)
	}
	return t, nil
}

// ParseCSV reads comma separated results. Every data row must have exactly
// as many fields as the header.
func ParseCSV(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return Table{}, ErrEmptyFile
	}

	// Files saved with classic Mac line endings use a bare carriage return.
	if !bytes.ContainsRune(data, '\n') {
		data = bytes.ReplaceAll(data, []byte{'\r'}, []byte{'\n'})
	}

	reader := csv.NewReader(bytes.NewReader(data))

	// The first record is instrument metadata of any shape. It may contain
	// quoted line breaks or stray quotes, so it is read leniently.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, ErrMissingHeader
		}
		return Table{}, fmt.Errorf("read csv: %w", err)
	}

	reader.FieldsPerRecord = 0
	reader.LazyQuotes = false
	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, ErrMissingHeader
	}

	return Table{
		Columns: headerLabels(records[0]),
		Rows:    records[1:],
	}, nil
}

// ParseXLSX reads the first sheet of a workbook with the same layout rules
// as ParseCSV. Short rows are padded with empty cells.
func ParseXLSX(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return Table{}, fmt.Errorf("no sheets: %w", ErrEmptyFile)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Table{}, ErrEmptyFile
	}
	if len(rows) < 2 || len(rows[1]) == 0 {
		return Table{}, ErrMissingHeader
	}

	columns := headerLabels(rows[1])
	var data [][]string
	for i, row := range rows[2:] {
		if isBlank(row) {
			continue
		}
		if len(row) > len(columns) {
			return Table{}, fmt.Errorf("row %d: %w", i+3, ErrRaggedRow)
		}
		padded := make([]string, len(columns))
		copy(padded, row)
		data = append(data, padded)
	}
	return Table{Columns: columns, Rows: data}, nil
}

// headerLabels trims labels, names blank ones by position and suffixes
// repeated labels with ".1", ".2", ... until every column has a label of
// its own.
func headerLabels(raw []string) []string {
	labels := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	suffix := make(map[string]int)
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		label := h
		for used[label] {
			suffix[h]++
			label = h + "." + strconv.Itoa(suffix[h])
		}
		used[label] = true
		labels[i] = label
	}
	return labels
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
