// Package spectra finds the wavenumber and transmittance columns of an FTIR
// results table and turns them into plottable series.
//
// Detection is driven by an ordered list of rules. Each rule names the role
// it fills and a predicate on the column label; for each role the first
// rule with a matching column wins, and within a rule the first matching
// column in upload order wins. Adding a spectral format means adding rules,
// not changing the scan.
package spectra
