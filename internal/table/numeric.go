package table

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal magnitudes outside this range cannot be held by a float64. They
// are rejected before conversion because converting a huge exponent builds
// the full power of ten.
const (
	minMagnitude = -330
	maxMagnitude = 310
)

// ParseNumber reads a cell as a decimal number. Blank cells, anything that
// is not a plain decimal literal (with optional exponent) and values out of
// float64 range report false.
func ParseNumber(s string) (float64, bool) {
	d, ok := parseDecimal(s)
	if !ok {
		return 0, false
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if d.IsZero() {
		return decimal.Zero, true
	}
	magnitude := int64(d.Exponent()) + int64(d.NumDigits()) - 1
	if magnitude < minMagnitude || magnitude > maxMagnitude {
		return decimal.Decimal{}, false
	}
	return d, true
}
