package table

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Count is how many rows hold a given value.
type Count struct {
	Value string
	N     int
}

// ValueCounts tallies the non-empty values of a column. The result is
// ordered by value: numerically when every value is a number, otherwise
// lexically. The second return is false when the column does not exist.
func ValueCounts(t Table, column string) ([]Count, bool) {
	values, ok := t.Column(column)
	if !ok {
		return nil, false
	}

	tally := make(map[string]int)
	var order []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, seen := tally[v]; !seen {
			order = append(order, v)
		}
		tally[v]++
	}

	numeric := make(map[string]decimal.Decimal, len(order))
	for _, v := range order {
		d, ok := parseDecimal(v)
		if !ok {
			numeric = nil
			break
		}
		numeric[v] = d
	}

	sort.SliceStable(order, func(i, j int) bool {
		if numeric != nil {
			return numeric[order[i]].LessThan(numeric[order[j]])
		}
		return order[i] < order[j]
	})

	counts := make([]Count, len(order))
	for i, v := range order {
		counts[i] = Count{Value: v, N: tally[v]}
	}
	return counts, true
}
