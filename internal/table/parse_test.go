package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const ftirCSV = `Sample ZnO run 3,exported 2024-02-11
Wavenumber (cm-1),%T
4000,98.2
3500,91.0
1630,75.4
`

func TestParseCSV(t *testing.T) {
	t.Parallel()

	t.Run("skips the first line and reads the header from line 2", func(t *testing.T) {
		t.Parallel()

		tbl, err := ParseCSV(strings.NewReader(ftirCSV))
		require.NoError(t, err)
		assert.Equal(t, []string{"Wavenumber (cm-1)", "%T"}, tbl.Columns)
		assert.Equal(t, [][]string{{"4000", "98.2"}, {"3500", "91.0"}, {"1630", "75.4"}}, tbl.Rows)
	})

	t.Run("first line may have any shape", func(t *testing.T) {
		t.Parallel()

		in := "just a title line\r\nA,B,C\r\n1,2,3\r\n"
		tbl, err := ParseCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, tbl.Columns)
		assert.Equal(t, [][]string{{"1", "2", "3"}}, tbl.Rows)
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		t.Parallel()

		in := "\xEF\xBB\xBFmeta\nX,Y\n1,2\n"
		tbl, err := ParseCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []string{"X", "Y"}, tbl.Columns)
	})

	t.Run("blank and repeated labels", func(t *testing.T) {
		t.Parallel()

		in := "meta\n%T, ,%T,%T\n1,2,3,4\n"
		tbl, err := ParseCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []string{"%T", "Column_2", "%T.1", "%T.2"}, tbl.Columns)
	})

	t.Run("suffixed labels never collide", func(t *testing.T) {
		t.Parallel()

		tbl, err := ParseCSV(strings.NewReader("meta\na,a,a.1\n1,2,3\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "a.1", "a.1.1"}, tbl.Columns)

		tbl, err = ParseCSV(strings.NewReader("meta\na.1,a,a\n1,2,3\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a.1", "a", "a.2"}, tbl.Columns)
	})

	t.Run("header only", func(t *testing.T) {
		t.Parallel()

		tbl, err := ParseCSV(strings.NewReader("meta\nA,B\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, tbl.Columns)
		assert.Empty(t, tbl.Rows)
	})

	t.Run("inconsistent field count is an error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseCSV(strings.NewReader("meta\nA,B\n1,2\n3,4,5\n"))
		require.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, err := ParseCSV(strings.NewReader("  \n"))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("single line has no header", func(t *testing.T) {
		t.Parallel()

		_, err := ParseCSV(strings.NewReader("only one line"))
		assert.ErrorIs(t, err, ErrMissingHeader)
	})

	t.Run("quoted line break in the first line", func(t *testing.T) {
		t.Parallel()

		in := "\"Sample ZnO\nannealed 400C\",run 3\nWavenumber (cm-1),%T\n4000,98.2\n"
		tbl, err := ParseCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []string{"Wavenumber (cm-1)", "%T"}, tbl.Columns)
		assert.Equal(t, [][]string{{"4000", "98.2"}}, tbl.Rows)
	})

	t.Run("stray quote in the first line", func(t *testing.T) {
		t.Parallel()

		in := "run \"3\" export\nA,B\n1,2\n"
		tbl, err := ParseCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, tbl.Columns)
	})

	t.Run("carriage return line endings", func(t *testing.T) {
		t.Parallel()

		tbl, err := ParseCSV(strings.NewReader("meta\rA,B\r1,2\r3,4\r"))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, tbl.Columns)
		assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, tbl.Rows)
	})
}

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	t.Parallel()

	t.Run("reads header from row 2", func(t *testing.T) {
		t.Parallel()

		data := buildWorkbook(t, [][]interface{}{
			{"Instrument export"},
			{"Wavenumber (cm-1)", "%T", "Note"},
			{4000, 98.5, "start"},
			{3500, 90},
		})
		tbl, err := ParseXLSX(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, []string{"Wavenumber (cm-1)", "%T", "Note"}, tbl.Columns)
		assert.Equal(t, [][]string{{"4000", "98.5", "start"}, {"3500", "90", ""}}, tbl.Rows)
	})

	t.Run("row wider than header", func(t *testing.T) {
		t.Parallel()

		data := buildWorkbook(t, [][]interface{}{
			{"meta"},
			{"A"},
			{1, 2},
		})
		_, err := ParseXLSX(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrRaggedRow)
	})

	t.Run("missing header row", func(t *testing.T) {
		t.Parallel()

		data := buildWorkbook(t, [][]interface{}{{"meta"}})
		_, err := ParseXLSX(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrMissingHeader)
	})

	t.Run("not a workbook", func(t *testing.T) {
		t.Parallel()

		_, err := ParseXLSX(strings.NewReader("definitely not zip"))
		require.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("dispatches on extension", func(t *testing.T) {
		t.Parallel()

		tbl, err := Parse("ZnO.CSV", []byte(ftirCSV), 0)
		require.NoError(t, err)
		assert.Equal(t, 3, tbl.Len())
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		_, err := Parse("notes.txt", []byte(ftirCSV), 0)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	})

	t.Run("row limit", func(t *testing.T) {
		t.Parallel()

		_, err := Parse("ZnO.csv", []byte(ftirCSV), 2)
		assert.ErrorIs(t, err, ErrTooManyRows)

		_, err = Parse("ZnO.csv", []byte(ftirCSV), 3)
		assert.NoError(t, err)
	})
}
