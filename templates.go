// templates.go
package main

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	// add turns zero-based row indexes into row numbers.
	"add":      func(a, b int) int { return a + b },
	"contains": slices.Contains[[]int, int],
	// formatSize prints upload limits in binary units, e.g. "10 MiB".
	"formatSize": func(size int64) string {
		if size < 0 {
			size = 0
		}
		return humanize.IBytes(uint64(size))
	},
	"formatNumber": formatNumber,
}

// formatNumber rounds a statistic to two decimals. Results that overflow
// float64 are printed as is.
func formatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprint(f)
	}
	return decimal.NewFromFloat(f).StringFixed(2)
}

var dashboardTemplate = template.Must(template.New("dashboard.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/dashboard.html"))
var resultTemplate = template.Must(template.New("results.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/results.html"))
