package table

// Concat stacks tables row-wise. The result has the union of all column
// labels in order of first appearance; a row gets an empty cell for every
// column its source table did not have.
func Concat(tables ...Table) Table {
	var columns []string
	position := make(map[string]int)
	for _, t := range tables {
		for _, c := range t.Columns {
			if _, ok := position[c]; !ok {
				position[c] = len(columns)
				columns = append(columns, c)
			}
		}
	}

	out := Table{Columns: columns}
	for _, t := range tables {
		for _, row := range t.Rows {
			merged := make([]string, len(columns))
			for i, v := range row {
				if i < len(t.Columns) {
					merged[position[t.Columns[i]]] = v
				}
			}
			out.Rows = append(out.Rows, merged)
		}
	}
	return out
}

// Combine builds the combined table: Concat followed by NormalizeColumns.
func Combine(tables ...Table) Table {
	return NormalizeColumns(Concat(tables...))
}
