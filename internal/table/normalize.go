package table

import "strings"

// Normalize maps a column label to its canonical key: every character that
// is not an ASCII letter or digit is dropped and the rest is lowercased.
func Normalize(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		}
	}
	return b.String()
}

// NormalizeColumns rewrites every column label with Normalize. Labels that
// collapse onto the same key share one column placed where the key first
// appeared; when both carry a value in the same row the later column wins.
func NormalizeColumns(t Table) Table {
	keys := make([]string, 0, len(t.Columns))
	position := make(map[string]int, len(t.Columns))
	target := make([]int, len(t.Columns))
	for i, label := range t.Columns {
		key := Normalize(label)
		pos, ok := position[key]
		if !ok {
			pos = len(keys)
			position[key] = pos
			keys = append(keys, key)
		}
		target[i] = pos
	}

	out := Table{Columns: keys, Rows: make([][]string, len(t.Rows))}
	for r, row := range t.Rows {
		merged := make([]string, len(keys))
		for i, v := range row {
			if i >= len(target) || v == "" {
				continue
			}
			merged[target[i]] = v
		}
		out.Rows[r] = merged
	}
	return out
}
