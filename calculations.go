// calculations.go
package main

import (
	"errors"
	"math"
	"sort"

	"ftirdash/internal/table"
)

var (
	errNoNumericValues      = errors.New("no numeric values")
	errUnsupportedOperation = errors.New("unsupported operation")
)

var operations = []string{"sum", "average", "median", "min", "max", "count", "std"}

func performCalculation(data table.Table, colIndex int, op string) (float64, error) {
	var values []float64
	for _, row := range data.Rows {
		if colIndex >= len(row) {
			continue
		}
		num, ok := table.ParseNumber(row[colIndex])
		if !ok {
			continue
		}
		values = append(values, num)
	}
	if len(values) == 0 {
		return 0, errNoNumericValues
	}
	switch op {
	case "sum":
		return sum(values), nil
	case "average":
		return avg(values), nil
	case "median":
		return median(values), nil
	case "min":
		return minOf(values), nil
	case "max":
		return maxOf(values), nil
	case "count":
		return float64(len(values)), nil
	case "std":
		return std(values), nil
	default:
		return 0, errUnsupportedOperation
	}
}

func sum(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s
}

func avg(vals []float64) float64 { return sum(vals) / float64(len(vals)) }

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// std is the sample standard deviation.
func std(vals []float64) float64 {
	if len(vals) <= 1 {
		return 0
	}
	mean := avg(vals)
	sumSq := 0.0
	for _, v := range vals {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(vals)-1))
}
