package table

import "strings"

// Filter keeps the rows where at least one cell contains keyword, compared
// case-insensitively. An empty keyword matches every row and returns t as is.
func Filter(t Table, keyword string) Table {
	if keyword == "" {
		return t
	}
	needle := strings.ToLower(keyword)

	out := Table{Columns: t.Columns, Rows: [][]string{}}
	for _, row := range t.Rows {
		if rowContains(row, needle) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

func rowContains(row []string, needle string) bool {
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), needle) {
			return true
		}
	}
	return false
}
