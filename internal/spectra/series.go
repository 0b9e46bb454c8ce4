package spectra

import (
	"errors"
	"fmt"
	"strings"

	"ftirdash/internal/table"
)

var (
	// ErrDetectionMiss means the file lacks a recognisable wavenumber or
	// transmittance column and cannot be plotted.
	ErrDetectionMiss = errors.New("could not detect columns for FTIR plotting")

	// ErrTooFewPoints means fewer than two rows hold numbers in both columns.
	ErrTooFewPoints = errors.New("not enough numeric points to plot")
)

// MissError is a detection miss for one file.
type MissError struct {
	File    string
	Missing []Role
}

func (e *MissError) Error() string {
	names := make([]string, len(e.Missing))
	for i, r := range e.Missing {
		names[i] = r.String()
	}
	return fmt.Sprintf("%s: %v (no %s column)", e.File, ErrDetectionMiss, strings.Join(names, " or "))
}

func (e *MissError) Unwrap() error {
	return ErrDetectionMiss
}

// Spectrum is one file's transmittance-vs-wavenumber series.
type Spectrum struct {
	Name          string
	Color         string
	XColumn       string
	YColumn       string
	Wavenumber    []float64
	Transmittance []float64
}

// Len returns the number of points.
func (s Spectrum) Len() int {
	return len(s.Wavenumber)
}

// Extract detects the axes of t and collects the rows where both cells are
// numbers. Rows with a blank or non-numeric cell on either axis are skipped.
func (d *Detector) Extract(name, color string, t table.Table) (Spectrum, error) {
	det := d.Detect(t.Columns)
	if !det.Plottable() {
		return Spectrum{}, &MissError{File: name, Missing: det.Missing()}
	}
	xcol, _ := det.Wavenumber()
	ycol, _ := det.Intensity()
	xi, yi := t.ColumnIndex(xcol), t.ColumnIndex(ycol)

	s := Spectrum{Name: name, Color: color, XColumn: xcol, YColumn: ycol}
	for _, row := range t.Rows {
		if xi >= len(row) || yi >= len(row) {
			continue
		}
		x, okx := table.ParseNumber(row[xi])
		y, oky := table.ParseNumber(row[yi])
		if !okx || !oky {
			continue
		}
		s.Wavenumber = append(s.Wavenumber, x)
		s.Transmittance = append(s.Transmittance, y)
	}
	if s.Len() < 2 {
		return Spectrum{}, fmt.Errorf("%s: %w (%d)", name, ErrTooFewPoints, s.Len())
	}
	return s, nil
}
