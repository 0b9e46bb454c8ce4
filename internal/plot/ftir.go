package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"ftirdash/internal/spectra"
)

const (
	// CombinedFileName is the download name of the combined plot.
	CombinedFileName = "FTIR_Combined.png"

	// XAxisLabel and YAxisLabel title the spectrum axes.
	XAxisLabel = "Wavenumber (cm-1)"
	YAxisLabel = "% Transmittance"
)

var (
	// ErrNoSeries is returned when there is nothing to draw.
	ErrNoSeries = errors.New("no series to plot")

	// ErrFlatRange is returned when every wavenumber has the same value.
	ErrFlatRange = errors.New("wavenumber range is zero")
)

// Options sizes the rendered charts.
type Options struct {
	Width    int
	Height   int
	DotWidth float64
}

// DefaultOptions returns an 800x500 chart with small point markers.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 500, DotWidth: 3}
}

// FileName returns the download name of a single file's plot.
func FileName(name string) string {
	return "FTIR_" + name + ".png"
}

// RenderSpectrum draws one file's spectrum.
func RenderSpectrum(w io.Writer, s spectra.Spectrum, opts Options) error {
	return render(w, "FTIR Spectrum: "+s.Name, []spectra.Spectrum{s}, opts)
}

// RenderCombined overlays several spectra, each in its own color.
func RenderCombined(w io.Writer, series []spectra.Spectrum, opts Options) error {
	return render(w, "Combined FTIR Spectra", series, opts)
}

func render(w io.Writer, title string, series []spectra.Spectrum, opts Options) error {
	ch, err := spectrumChart(title, series, opts)
	if err != nil {
		return err
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render %q: %w", title, err)
	}
	return nil
}

func spectrumChart(title string, series []spectra.Spectrum, opts Options) (chart.Chart, error) {
	if len(series) == 0 {
		return chart.Chart{}, ErrNoSeries
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	drawn := make([]chart.Series, 0, len(series))
	for _, s := range series {
		for i := range s.Wavenumber {
			minX, maxX = math.Min(minX, s.Wavenumber[i]), math.Max(maxX, s.Wavenumber[i])
			minY, maxY = math.Min(minY, s.Transmittance[i]), math.Max(maxY, s.Transmittance[i])
		}
		col := Color(s.Color)
		drawn = append(drawn, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.Wavenumber,
			YValues: s.Transmittance,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 1.5,
				DotColor:    col,
				DotWidth:    opts.DotWidth,
			},
		})
	}
	if minX >= maxX {
		return chart.Chart{}, ErrFlatRange
	}
	if minY >= maxY {
		minY, maxY = minY-1, maxY+1
	}

	ch := chart.Chart{
		Title:      title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  XAxisLabel,
			Range: &chart.ContinuousRange{Min: minX, Max: maxX, Descending: true},
		},
		YAxis: chart.YAxis{
			Name:  YAxisLabel,
			Range: &chart.ContinuousRange{Min: minY, Max: maxY},
		},
		Series: drawn,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch, nil
}
