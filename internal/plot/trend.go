package plot

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"ftirdash/internal/table"
)

// RenderTrend draws one bar per year with the number of result rows.
func RenderTrend(w io.Writer, counts []table.Count, opts Options) error {
	if len(counts) == 0 {
		return ErrNoSeries
	}

	bars := make([]chart.Value, len(counts))
	top := 0
	for i, c := range counts {
		bars[i] = chart.Value{Value: float64(c.N), Label: c.Value}
		if c.N > top {
			top = c.N
		}
	}

	bc := chart.BarChart{
		Title:      "Result Trends",
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   40,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top + 1)},
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}
