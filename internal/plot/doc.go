// Package plot renders FTIR spectra and result trends as PNG images with
// go-chart. The wavenumber axis runs from high to low, the way infrared
// spectra are conventionally read.
package plot
